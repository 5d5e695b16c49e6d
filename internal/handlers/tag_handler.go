package handlers

import (
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TagHandler handles HTTP requests for tags.
type TagHandler struct {
	service *services.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(service *services.TagService) *TagHandler {
	return &TagHandler{
		service: service,
	}
}

// RegisterRoutes registers the tag routes with the Fiber app.
func (h *TagHandler) RegisterRoutes(router fiber.Router) {
	tagRoutes := router.Group("/tags")
	tagRoutes.Get("/", h.HandleGetTags)
	tagRoutes.Get("/:id", h.HandleGetTagByID)
	tagRoutes.Post("/", h.HandleCreateTag)
	tagRoutes.Put("/:id", h.HandleUpdateTag)
	tagRoutes.Delete("/:id", h.HandleDeleteTag)
}

// HandleGetTags retrieves all tags.
func (h *TagHandler) HandleGetTags(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllTags())
}

// HandleGetTagByID retrieves a single tag by id.
func (h *TagHandler) HandleGetTagByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	tag, ok := h.service.GetTagByID(id)
	if !ok {
		return notFound(c, fmt.Sprintf("Tag with ID %d not found", id))
	}
	return c.JSON(tag)
}

// HandleCreateTag creates a new tag.
func (h *TagHandler) HandleCreateTag(c *fiber.Ctx) error {
	var dto models.TagCreateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing create tag request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}

	tag := h.service.CreateTag(dto)
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// HandleUpdateTag applies a partial update to an existing tag.
func (h *TagHandler) HandleUpdateTag(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	var dto models.TagUpdateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing update tag request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}

	if err := h.service.UpdateTag(id, dto); err != nil {
		return notFound(c, fmt.Sprintf("Tag with ID %d not found", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteTag deletes a tag by id.
func (h *TagHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.service.DeleteTag(id); err != nil {
		return notFound(c, fmt.Sprintf("Tag with ID %d not found", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
