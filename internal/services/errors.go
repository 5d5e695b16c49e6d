package services

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when another user already holds the email.
	ErrEmailTaken = errors.New("email must be unique")
)
