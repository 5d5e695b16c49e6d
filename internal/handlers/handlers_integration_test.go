package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lapak/internal/handlers"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp wires a Fiber app with fresh in-memory repositories and no
// event publisher, mirroring the wiring in main.go.
func setupApp() *fiber.App {
	userService := services.NewUserService(repositories.NewInMemoryUserRepository())
	orderService := services.NewOrderService(repositories.NewInMemoryOrderRepository(), nil)
	productService := services.NewProductService(repositories.NewInMemoryProductRepository())
	categoryService := services.NewCategoryService(repositories.NewInMemoryCategoryRepository())
	contactService := services.NewContactService(repositories.NewInMemoryContactRepository(), nil)
	tagService := services.NewTagService(repositories.NewInMemoryTagRepository())

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewUserHandler(userService).RegisterRoutes(apiV1)
	handlers.NewOrderHandler(orderService).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(apiV1)
	handlers.NewContactHandler(contactService).RegisterRoutes(apiV1)
	handlers.NewTagHandler(tagService).RegisterRoutes(apiV1)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

func TestCreateUserEndToEnd(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/users", fiber.Map{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.User
	decodeJSON(t, resp, &created)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Ada", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	// Same email in a different case conflicts and must not grow the store.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/users", fiber.Map{
		"name":  "Imposter",
		"email": "ADA@EXAMPLE.COM",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var conflict struct {
		Errors map[string][]string `json:"errors"`
	}
	decodeJSON(t, resp, &conflict)
	assert.Contains(t, conflict.Errors, "Email")

	resp = doRequest(t, app, http.MethodGet, "/api/v1/users", nil)
	var users []models.User
	decodeJSON(t, resp, &users)
	assert.Len(t, users, 1)
}

func TestCreateUserValidationFailure(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/users", fiber.Map{
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, "Name")
	assert.NotEmpty(t, body.Errors["Name"])

	// A rejected create must not touch the store.
	resp = doRequest(t, app, http.MethodGet, "/api/v1/users", nil)
	var users []models.User
	decodeJSON(t, resp, &users)
	assert.Empty(t, users)
}

func TestSearchUsersByName(t *testing.T) {
	app := setupApp()

	for _, u := range []fiber.Map{
		{"name": "Ann", "email": "ann@example.com"},
		{"name": "ANNA", "email": "anna@example.com"},
		{"name": "Joanna", "email": "joanna@example.com"},
		{"name": "Bob", "email": "bob@example.com"},
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/v1/users", u)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doRequest(t, app, http.MethodGet, "/api/v1/users/search?name=ann", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var results []models.User
	decodeJSON(t, resp, &results)
	assert.Len(t, results, 3)

	resp = doRequest(t, app, http.MethodGet, "/api/v1/users/search", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUpdateUserPartial(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/users", fiber.Map{
		"name":  "Ada",
		"email": "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Name-only update keeps the email.
	resp = doRequest(t, app, http.MethodPut, "/api/v1/users/1", fiber.Map{
		"name": "Ada Lovelace",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/v1/users/1", nil)
	var user models.User
	decodeJSON(t, resp, &user)
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)

	// Re-submitting their own email is not a conflict.
	resp = doRequest(t, app, http.MethodPut, "/api/v1/users/1", fiber.Map{
		"email": "ada@example.com",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestUserNotFoundResponses(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodGet, "/api/v1/users/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPut, "/api/v1/users/99", fiber.Map{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodDelete, "/api/v1/users/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryPartialUpdateEndToEnd(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/categories", fiber.Map{
		"name": "Electronics",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Category
	decodeJSON(t, resp, &created)
	assert.Equal(t, 1, created.ID)

	resp = doRequest(t, app, http.MethodPut, "/api/v1/categories/1", fiber.Map{
		"description": "Gadgets and devices",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/v1/categories/1", nil)
	var category models.Category
	decodeJSON(t, resp, &category)
	assert.Equal(t, "Electronics", category.Name)
	assert.Equal(t, "Gadgets and devices", category.Description)
}

func TestProductLifecycleEndToEnd(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":  "Widget",
		"price": 9.99,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decodeJSON(t, resp, &product)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, 9.99, product.Price)

	resp = doRequest(t, app, http.MethodDelete, "/api/v1/products/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/v1/products", nil)
	var products []models.Product
	decodeJSON(t, resp, &products)
	assert.Empty(t, products)
}

func TestProductUpdateRequiresAllFields(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/products", fiber.Map{
		"name":  "Widget",
		"price": 9.99,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Product updates are full replacements; omitting price is rejected.
	resp = doRequest(t, app, http.MethodPut, "/api/v1/products/1", fiber.Map{
		"name": "Sprocket",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Errors, "Price")
}

func TestCreateOrder(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/orders", fiber.Map{
		"user_id":      1,
		"product_name": "Widget",
		"quantity":     0,
		"total_price":  9.99,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Errors, "Quantity")

	resp = doRequest(t, app, http.MethodPost, "/api/v1/orders", fiber.Map{
		"user_id":      1,
		"product_name": "Widget",
		"quantity":     2,
		"total_price":  19.98,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	decodeJSON(t, resp, &order)
	assert.Equal(t, 1, order.ID)
	assert.False(t, order.OrderDate.IsZero())

	resp = doRequest(t, app, http.MethodGet, "/api/v1/orders/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestContactFormEmailCheck(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/contact", fiber.Map{
		"name":    "Ada",
		"email":   "ada@nodot",
		"subject": "Hello",
		"message": "Hi there",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Errors map[string][]string `json:"errors"`
	}
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Errors, "Email")

	resp = doRequest(t, app, http.MethodPost, "/api/v1/contact", fiber.Map{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hello",
		"message": "Hi there",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var msg models.ContactMessage
	decodeJSON(t, resp, &msg)
	assert.Equal(t, 1, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestTagEndpoints(t *testing.T) {
	app := setupApp()

	resp := doRequest(t, app, http.MethodPost, "/api/v1/tags", fiber.Map{
		"name": "sale",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var tag models.Tag
	decodeJSON(t, resp, &tag)
	assert.Equal(t, models.DefaultTagColor, tag.Color)

	resp = doRequest(t, app, http.MethodPost, "/api/v1/tags", fiber.Map{
		"name":  "bad",
		"color": "red",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPut, "/api/v1/tags/1", fiber.Map{
		"color": "#FF8800",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/v1/tags/1", nil)
	decodeJSON(t, resp, &tag)
	assert.Equal(t, "sale", tag.Name)
	assert.Equal(t, "#FF8800", tag.Color)
}
