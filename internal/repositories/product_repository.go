package repositories

import (
	"strings"

	"lapak/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() []models.Product
	GetByID(id int) (models.Product, bool)
	Create(dto models.ProductCreateDTO) models.Product
	Update(id int, dto models.ProductUpdateDTO) bool
	Delete(id int) bool
}

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository.
type InMemoryProductRepository struct {
	store *store[models.Product]
}

// NewInMemoryProductRepository creates a new, empty InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		store: newStore(func(p models.Product) int { return p.ID }),
	}
}

// GetAll returns all products in insertion order.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	return r.store.getAll()
}

// GetByID returns the product with the given id, if present.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, bool) {
	return r.store.getByID(id)
}

// Create adds a new product and returns it with its assigned id.
func (r *InMemoryProductRepository) Create(dto models.ProductCreateDTO) models.Product {
	return r.store.create(func(id int) models.Product {
		return models.Product{
			ID:    id,
			Name:  strings.TrimSpace(dto.Name),
			Price: *dto.Price,
		}
	})
}

// Update replaces the stored product wholesale; both fields always
// overwrite. Only the id and position are preserved.
func (r *InMemoryProductRepository) Update(id int, dto models.ProductUpdateDTO) bool {
	return r.store.update(id, func(existing models.Product) models.Product {
		return models.Product{
			ID:    existing.ID,
			Name:  strings.TrimSpace(dto.Name),
			Price: *dto.Price,
		}
	})
}

// Delete removes the product with the given id.
func (r *InMemoryProductRepository) Delete(id int) bool {
	return r.store.delete(id)
}
