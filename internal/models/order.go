package models

import "time"

// Order represents a customer order. Orders reference users by id only;
// no existence check is performed against the user collection.
type Order struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
	OrderDate   time.Time `json:"order_date"`
}

// OrderCreateDTO is the payload accepted when placing an order. Numeric
// fields are pointers so that an absent field fails the required rule
// instead of defaulting to zero.
type OrderCreateDTO struct {
	UserID      *int     `json:"user_id" validate:"required"`
	ProductName string   `json:"product_name" validate:"required,max=200"`
	Quantity    *int     `json:"quantity" validate:"required,gte=1"`
	TotalPrice  *float64 `json:"total_price" validate:"required,gte=0"`
}
