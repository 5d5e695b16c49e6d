package handlers

import (
	"log"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{
		service: service,
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contact")
	contactRoutes.Get("/", h.HandleGetMessages)
	contactRoutes.Post("/", h.HandleCreateMessage)
}

// HandleGetMessages retrieves all contact messages.
func (h *ContactHandler) HandleGetMessages(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllMessages())
}

// HandleCreateMessage stores a contact form submission. The dedicated
// email syntax check runs even when the struct validation passes.
func (h *ContactHandler) HandleCreateMessage(c *fiber.Ctx) error {
	var dto models.ContactCreateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}
	if !validation.IsValidEmail(dto.Email) {
		return validationFailed(c, map[string][]string{
			"Email": {"Email is not valid."},
		})
	}

	msg := h.service.CreateMessage(dto)
	return c.Status(fiber.StatusCreated).JSON(msg)
}
