package services

import (
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() []models.Category {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by id.
func (s *CategoryService) GetCategoryByID(id int) (models.Category, bool) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(dto models.CategoryCreateDTO) models.Category {
	return s.repo.Create(dto)
}

// UpdateCategory applies a partial update to an existing category.
func (s *CategoryService) UpdateCategory(id int, dto models.CategoryUpdateDTO) error {
	if !s.repo.Update(id, dto) {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory deletes a category by id.
func (s *CategoryService) DeleteCategory(id int) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}
