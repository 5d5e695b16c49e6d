package models

// DefaultTagColor is applied when a tag is created without a color.
const DefaultTagColor = "#000000"

// Tag represents a label that can be attached to products.
type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagCreateDTO is the payload accepted when creating a tag. Color must be
// a six-digit hex color like #1A2B3C when present.
type TagCreateDTO struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,len=7,hexcolor"`
}

// TagUpdateDTO is the payload accepted when updating a tag.
// Fields left nil keep their current value.
type TagUpdateDTO struct {
	Name  *string `json:"name" validate:"omitempty,max=50"`
	Color *string `json:"color" validate:"omitempty,len=7,hexcolor"`
}
