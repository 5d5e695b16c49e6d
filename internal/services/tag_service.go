package services

import (
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// TagService handles business logic related to tags.
type TagService struct {
	repo repositories.TagRepository
}

// NewTagService creates a new TagService.
func NewTagService(repo repositories.TagRepository) *TagService {
	return &TagService{
		repo: repo,
	}
}

// GetAllTags retrieves all tags.
func (s *TagService) GetAllTags() []models.Tag {
	return s.repo.GetAll()
}

// GetTagByID retrieves a single tag by id.
func (s *TagService) GetTagByID(id int) (models.Tag, bool) {
	return s.repo.GetByID(id)
}

// CreateTag creates a new tag.
func (s *TagService) CreateTag(dto models.TagCreateDTO) models.Tag {
	return s.repo.Create(dto)
}

// UpdateTag applies a partial update to an existing tag.
func (s *TagService) UpdateTag(id int, dto models.TagUpdateDTO) error {
	if !s.repo.Update(id, dto) {
		return ErrNotFound
	}
	return nil
}

// DeleteTag deletes a tag by id.
func (s *TagService) DeleteTag(id int) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}
