package models

// Category represents a product category.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryCreateDTO is the payload accepted when creating a category.
type CategoryCreateDTO struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// CategoryUpdateDTO is the payload accepted when updating a category.
// Fields left nil keep their current value.
type CategoryUpdateDTO struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}
