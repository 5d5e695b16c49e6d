package models

import "time"

// User represents a registered user of the shop.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreateDTO is the payload accepted when creating a user.
type UserCreateDTO struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// UserUpdateDTO is the payload accepted when updating a user.
// Fields left nil keep their current value.
type UserUpdateDTO struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}
