package handlers

import (
	"fmt"
	"log"

	"lapak/internal/models"
	"lapak/internal/services"
	"lapak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllProducts())
}

// HandleGetProductByID retrieves a single product by id.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	product, ok := h.service.GetProductByID(id)
	if !ok {
		return notFound(c, fmt.Sprintf("Product with ID %d not found", id))
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var dto models.ProductCreateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}

	product := h.service.CreateProduct(dto)
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces an existing product. Product updates are
// full replacements; both fields are required.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	var dto models.ProductUpdateDTO
	if err := c.BodyParser(&dto); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return invalidBody(c, err)
	}

	if errs := validation.Validate(dto); errs != nil {
		return validationFailed(c, errs)
	}

	if err := h.service.UpdateProduct(id, dto); err != nil {
		return notFound(c, fmt.Sprintf("Product with ID %d not found", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteProduct deletes a product by id.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidID(c)
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return notFound(c, fmt.Sprintf("Product with ID %d not found", id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
