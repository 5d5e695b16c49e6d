package repositories

import (
	"strings"

	"lapak/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() []models.Category
	GetByID(id int) (models.Category, bool)
	Create(dto models.CategoryCreateDTO) models.Category
	Update(id int, dto models.CategoryUpdateDTO) bool
	Delete(id int) bool
}

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository.
type InMemoryCategoryRepository struct {
	store *store[models.Category]
}

// NewInMemoryCategoryRepository creates a new, empty
// InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		store: newStore(func(c models.Category) int { return c.ID }),
	}
}

// GetAll returns all categories in insertion order.
func (r *InMemoryCategoryRepository) GetAll() []models.Category {
	return r.store.getAll()
}

// GetByID returns the category with the given id, if present.
func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, bool) {
	return r.store.getByID(id)
}

// Create adds a new category and returns it with its assigned id.
func (r *InMemoryCategoryRepository) Create(dto models.CategoryCreateDTO) models.Category {
	return r.store.create(func(id int) models.Category {
		return models.Category{
			ID:          id,
			Name:        strings.TrimSpace(dto.Name),
			Description: strings.TrimSpace(dto.Description),
		}
	})
}

// Update merges the set DTO fields over the stored category. Unset fields
// keep their prior values.
func (r *InMemoryCategoryRepository) Update(id int, dto models.CategoryUpdateDTO) bool {
	return r.store.update(id, func(existing models.Category) models.Category {
		if dto.Name != nil {
			existing.Name = strings.TrimSpace(*dto.Name)
		}
		if dto.Description != nil {
			existing.Description = strings.TrimSpace(*dto.Description)
		}
		return existing
	})
}

// Delete removes the category with the given id.
func (r *InMemoryCategoryRepository) Delete(id int) bool {
	return r.store.delete(id)
}
