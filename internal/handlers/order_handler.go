package handlers

import (
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllOrders())
}

// HandleGetOrderByID retrieves a single order by id.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	order, ok := h.service.GetOrderByID(id)
	if !ok {
		return notFound(c, fmt.Sprintf("Order with ID %d not found", id))
	}
	return c.JSON(order)
}

// HandleCreateOrder places a new order. The referenced user id is not
// checked against the user collection.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var dto models.OrderCreateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}

	order := h.service.CreateOrder(dto)
	return c.Status(fiber.StatusCreated).JSON(order)
}
