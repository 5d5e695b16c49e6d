package handlers

import (
	"errors"
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes with the Fiber app. The search
// route must be registered before the :id route so "search" is not parsed
// as an id.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/search", h.HandleSearchUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers retrieves all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllUsers())
}

// HandleSearchUsers retrieves users whose name contains the name query
// parameter as a case-insensitive substring.
func (h *UserHandler) HandleSearchUsers(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "name query parameter is required",
		})
	}
	return c.JSON(h.service.SearchUsersByName(name))
}

// HandleGetUserByID retrieves a single user by id.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	user, ok := h.service.GetUserByID(id)
	if !ok {
		return notFound(c, fmt.Sprintf("User with ID %d not found", id))
	}
	return c.JSON(user)
}

// HandleCreateUser creates a new user. The dedicated email syntax check
// runs on top of the struct validation, and the uniqueness pre-check runs
// after both so a conflict never reaches the store.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var dto models.UserCreateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
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

	user, err := h.service.CreateUser(dto)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Email is already in use",
				"errors":  map[string][]string{"Email": {"Email must be unique."}},
			})
		}
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleUpdateUser applies a partial update to an existing user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	var dto models.UserUpdateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing update user request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}
	if dto.Email != nil && !validation.IsValidEmail(*dto.Email) {
		return validationFailed(c, map[string][]string{
			"Email": {"Email is not valid."},
		})
	}

	switch err := h.service.UpdateUser(id, dto); {
	case errors.Is(err, services.ErrNotFound):
		return notFound(c, fmt.Sprintf("User with ID %d not found", id))
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Email is already in use",
			"errors":  map[string][]string{"Email": {"Email must be unique."}},
		})
	case err != nil:
		log.Printf("Error updating user %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user",
			"error":   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteUser deletes a user by id.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.service.DeleteUser(id); err != nil {
		return notFound(c, fmt.Sprintf("User with ID %d not found", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
