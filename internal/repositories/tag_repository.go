package repositories

import (
	"strings"

	"lapak/internal/models"
)

// TagRepository defines the interface for tag data access.
type TagRepository interface {
	GetAll() []models.Tag
	GetByID(id int) (models.Tag, bool)
	Create(dto models.TagCreateDTO) models.Tag
	Update(id int, dto models.TagUpdateDTO) bool
	Delete(id int) bool
}

// InMemoryTagRepository is an in-memory implementation of TagRepository.
type InMemoryTagRepository struct {
	store *store[models.Tag]
}

// NewInMemoryTagRepository creates a new, empty InMemoryTagRepository.
func NewInMemoryTagRepository() *InMemoryTagRepository {
	return &InMemoryTagRepository{
		store: newStore(func(t models.Tag) int { return t.ID }),
	}
}

// GetAll returns all tags in insertion order.
func (r *InMemoryTagRepository) GetAll() []models.Tag {
	return r.store.getAll()
}

// GetByID returns the tag with the given id, if present.
func (r *InMemoryTagRepository) GetByID(id int) (models.Tag, bool) {
	return r.store.getByID(id)
}

// Create adds a new tag, defaulting the color when none is given.
func (r *InMemoryTagRepository) Create(dto models.TagCreateDTO) models.Tag {
	color := strings.TrimSpace(dto.Color)
	if color == "" {
		color = models.DefaultTagColor
	}
	return r.store.create(func(id int) models.Tag {
		return models.Tag{
			ID:    id,
			Name:  strings.TrimSpace(dto.Name),
			Color: color,
		}
	})
}

// Update merges the set DTO fields over the stored tag. Unset fields keep
// their prior values.
func (r *InMemoryTagRepository) Update(id int, dto models.TagUpdateDTO) bool {
	return r.store.update(id, func(existing models.Tag) models.Tag {
		if dto.Name != nil {
			existing.Name = strings.TrimSpace(*dto.Name)
		}
		if dto.Color != nil {
			existing.Color = strings.TrimSpace(*dto.Color)
		}
		return existing
	})
}

// Delete removes the tag with the given id.
func (r *InMemoryTagRepository) Delete(id int) bool {
	return r.store.delete(id)
}
