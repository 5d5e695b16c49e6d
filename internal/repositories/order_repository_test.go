package repositories_test

import (
	"testing"

	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestOrderRepository_CreateStampsOrderDate(t *testing.T) {
	repo := repositories.NewInMemoryOrderRepository()

	order := repo.Create(models.OrderCreateDTO{
		UserID:      intPtr(7),
		ProductName: " Widget ",
		Quantity:    intPtr(2),
		TotalPrice:  floatPtr(19.98),
	})

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 7, order.UserID)
	assert.Equal(t, "Widget", order.ProductName)
	assert.Equal(t, 2, order.Quantity)
	assert.Equal(t, 19.98, order.TotalPrice)
	assert.False(t, order.OrderDate.IsZero())
}

func TestOrderRepository_GetByIDAbsent(t *testing.T) {
	repo := repositories.NewInMemoryOrderRepository()

	_, ok := repo.GetByID(1)
	assert.False(t, ok)
}

func TestOrderRepository_GetAllPreservesInsertionOrder(t *testing.T) {
	repo := repositories.NewInMemoryOrderRepository()

	for i := 0; i < 3; i++ {
		repo.Create(models.OrderCreateDTO{
			UserID:      intPtr(1),
			ProductName: "Widget",
			Quantity:    intPtr(1),
			TotalPrice:  floatPtr(9.99),
		})
	}

	orders := repo.GetAll()
	assert.Len(t, orders, 3)
	for i, order := range orders {
		assert.Equal(t, i+1, order.ID)
	}
}
