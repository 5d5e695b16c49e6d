package repositories

import (
	"strings"
	"time"

	"lapak/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// create-only; there is no update or delete.
type OrderRepository interface {
	GetAll() []models.Order
	GetByID(id int) (models.Order, bool)
	Create(dto models.OrderCreateDTO) models.Order
}

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	store *store[models.Order]
}

// NewInMemoryOrderRepository creates a new, empty InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		store: newStore(func(o models.Order) int { return o.ID }),
	}
}

// GetAll returns all orders in insertion order.
func (r *InMemoryOrderRepository) GetAll() []models.Order {
	return r.store.getAll()
}

// GetByID returns the order with the given id, if present.
func (r *InMemoryOrderRepository) GetByID(id int) (models.Order, bool) {
	return r.store.getByID(id)
}

// Create adds a new order stamped with the current time and returns it.
func (r *InMemoryOrderRepository) Create(dto models.OrderCreateDTO) models.Order {
	return r.store.create(func(id int) models.Order {
		return models.Order{
			ID:          id,
			UserID:      *dto.UserID,
			ProductName: strings.TrimSpace(dto.ProductName),
			Quantity:    *dto.Quantity,
			TotalPrice:  *dto.TotalPrice,
			OrderDate:   time.Now().UTC(),
		}
	})
}
