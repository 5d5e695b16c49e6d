package services

import (
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo   repositories.OrderRepository
	events EventPublisher
}

// NewOrderService creates a new OrderService. The publisher may be nil, in
// which case events are skipped.
func NewOrderService(repo repositories.OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{
		repo:   repo,
		events: events,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() []models.Order {
	return s.repo.GetAll()
}

// GetOrderByID retrieves a single order by id.
func (s *OrderService) GetOrderByID(id int) (models.Order, bool) {
	return s.repo.GetByID(id)
}

// CreateOrder places an order and publishes an order.created event. A
// publish failure is logged but never fails the request.
func (s *OrderService) CreateOrder(dto models.OrderCreateDTO) models.Order {
	order := s.repo.Create(dto)

	if s.events != nil {
		payload := map[string]interface{}{
			"order_id":     order.ID,
			"user_id":      order.UserID,
			"product_name": order.ProductName,
			"quantity":     order.Quantity,
			"total_price":  order.TotalPrice,
		}
		if err := s.events.Publish("order.created", payload); err != nil {
			log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
		}
	}

	return order
}
