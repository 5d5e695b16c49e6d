package repositories

import (
	"strings"
	"time"

	"lapak/internal/models"
)

// ContactRepository defines the interface for contact message data access.
// Messages are create-only.
type ContactRepository interface {
	GetAll() []models.ContactMessage
	Create(dto models.ContactCreateDTO) models.ContactMessage
}

// InMemoryContactRepository is an in-memory implementation of
// ContactRepository.
type InMemoryContactRepository struct {
	store *store[models.ContactMessage]
}

// NewInMemoryContactRepository creates a new, empty
// InMemoryContactRepository.
func NewInMemoryContactRepository() *InMemoryContactRepository {
	return &InMemoryContactRepository{
		store: newStore(func(m models.ContactMessage) int { return m.ID }),
	}
}

// GetAll returns all contact messages in insertion order.
func (r *InMemoryContactRepository) GetAll() []models.ContactMessage {
	return r.store.getAll()
}

// Create adds a new contact message stamped with the current time.
func (r *InMemoryContactRepository) Create(dto models.ContactCreateDTO) models.ContactMessage {
	return r.store.create(func(id int) models.ContactMessage {
		return models.ContactMessage{
			ID:        id,
			Name:      strings.TrimSpace(dto.Name),
			Email:     strings.TrimSpace(dto.Email),
			Subject:   strings.TrimSpace(dto.Subject),
			Message:   strings.TrimSpace(dto.Message),
			CreatedAt: time.Now().UTC(),
		}
	})
}
