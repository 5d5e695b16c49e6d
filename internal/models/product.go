package models

// Product represents a product in the catalog.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ProductCreateDTO is the payload accepted when creating a product.
type ProductCreateDTO struct {
	Name  string   `json:"name" validate:"required,min=1,max=200"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

// ProductUpdateDTO is the payload accepted when updating a product.
// Unlike users and categories, product updates are full replacements:
// both fields are required and always overwrite the stored values.
type ProductUpdateDTO struct {
	Name  string   `json:"name" validate:"required,min=1,max=200"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}
