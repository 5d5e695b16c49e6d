package repositories

import (
	"strings"
	"time"

	"lapak/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() []models.User
	GetByID(id int) (models.User, bool)
	SearchByName(name string) []models.User
	ExistsByEmail(email string, excludeID int) bool
	Create(dto models.UserCreateDTO) models.User
	Update(id int, dto models.UserUpdateDTO) bool
	Delete(id int) bool
}

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	store *store[models.User]
}

// NewInMemoryUserRepository creates a new, empty InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: newStore(func(u models.User) int { return u.ID }),
	}
}

// GetAll returns all users in insertion order.
func (r *InMemoryUserRepository) GetAll() []models.User {
	return r.store.getAll()
}

// GetByID returns the user with the given id, if present.
func (r *InMemoryUserRepository) GetByID(id int) (models.User, bool) {
	return r.store.getByID(id)
}

// SearchByName returns every user whose name contains the query as a
// case-insensitive substring. A blank query matches nothing.
func (r *InMemoryUserRepository) SearchByName(name string) []models.User {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return []models.User{}
	}
	return r.store.find(func(u models.User) bool {
		return strings.Contains(strings.ToLower(u.Name), needle)
	})
}

// ExistsByEmail reports whether any user other than excludeID holds the
// email, compared case-insensitively. Pass 0 to exclude nobody.
func (r *InMemoryUserRepository) ExistsByEmail(email string, excludeID int) bool {
	email = strings.TrimSpace(email)
	return r.store.any(func(u models.User) bool {
		return u.ID != excludeID && strings.EqualFold(u.Email, email)
	})
}

// Create adds a new user and returns it with its assigned id.
func (r *InMemoryUserRepository) Create(dto models.UserCreateDTO) models.User {
	return r.store.create(func(id int) models.User {
		return models.User{
			ID:        id,
			Name:      strings.TrimSpace(dto.Name),
			Email:     strings.TrimSpace(dto.Email),
			CreatedAt: time.Now().UTC(),
		}
	})
}

// Update merges the set DTO fields over the stored user. Unset fields keep
// their prior values; CreatedAt is never touched.
func (r *InMemoryUserRepository) Update(id int, dto models.UserUpdateDTO) bool {
	return r.store.update(id, func(existing models.User) models.User {
		if dto.Name != nil {
			existing.Name = strings.TrimSpace(*dto.Name)
		}
		if dto.Email != nil {
			existing.Email = strings.TrimSpace(*dto.Email)
		}
		return existing
	})
}

// Delete removes the user with the given id.
func (r *InMemoryUserRepository) Delete(id int) bool {
	return r.store.delete(id)
}
