package handlers

import (
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllCategories())
}

// HandleGetCategoryByID retrieves a single category by id.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	category, ok := h.service.GetCategoryByID(id)
	if !ok {
		return notFound(c, fmt.Sprintf("Category with ID %d not found", id))
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var dto models.CategoryCreateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing create category request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}

	category := h.service.CreateCategory(dto)
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory applies a partial update to an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	var dto models.CategoryUpdateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing update category request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}

	if err := h.service.UpdateCategory(id, dto); err != nil {
		return notFound(c, fmt.Sprintf("Category with ID %d not found", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteCategory deletes a category by id.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.service.DeleteCategory(id); err != nil {
		return notFound(c, fmt.Sprintf("Category with ID %d not found", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
