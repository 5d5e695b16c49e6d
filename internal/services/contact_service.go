package services

import (
	"log"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// ContactService handles business logic for the contact form.
type ContactService struct {
	repo   repositories.ContactRepository
	events EventPublisher
}

// NewContactService creates a new ContactService. The publisher may be
// nil, in which case events are skipped.
func NewContactService(repo repositories.ContactRepository, events EventPublisher) *ContactService {
	return &ContactService{
		repo:   repo,
		events: events,
	}
}

// GetAllMessages retrieves all contact messages.
func (s *ContactService) GetAllMessages() []models.ContactMessage {
	return s.repo.GetAll()
}

// CreateMessage stores a contact message and publishes a contact.received
// event. A publish failure is logged but never fails the request.
func (s *ContactService) CreateMessage(dto models.ContactCreateDTO) models.ContactMessage {
	msg := s.repo.Create(dto)

	if s.events != nil {
		payload := map[string]interface{}{
			"message_id": msg.ID,
			"email":      msg.Email,
			"subject":    msg.Subject,
		}
		if err := s.events.Publish("contact.received", payload); err != nil {
			log.Printf("Warning: failed to publish contact received event for message %d: %v", msg.ID, err)
		}
	}

	return msg
}
