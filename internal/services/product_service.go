package services

import (
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() []models.Product {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by id.
func (s *ProductService) GetProductByID(id int) (models.Product, bool) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(dto models.ProductCreateDTO) models.Product {
	return s.repo.Create(dto)
}

// UpdateProduct replaces an existing product wholesale.
func (s *ProductService) UpdateProduct(id int, dto models.ProductUpdateDTO) error {
	if !s.repo.Update(id, dto) {
		return ErrNotFound
	}
	return nil
}

// DeleteProduct deletes a product by id.
func (s *ProductService) DeleteProduct(id int) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}
