package services

import (
	"lapak/internal/models"
	"lapak/internal/repositories"
)

// UserService handles business logic related to users, most notably the
// email-uniqueness rule. The repository itself does not enforce
// uniqueness; the pre-check here is the only guard.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() []models.User {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by id.
func (s *UserService) GetUserByID(id int) (models.User, bool) {
	return s.repo.GetByID(id)
}

// SearchUsersByName retrieves users whose name contains the query.
func (s *UserService) SearchUsersByName(name string) []models.User {
	return s.repo.SearchByName(name)
}

// CreateUser creates a new user after checking that the email is not
// already registered. On conflict the store is left untouched.
func (s *UserService) CreateUser(dto models.UserCreateDTO) (models.User, error) {
	if s.repo.ExistsByEmail(dto.Email, 0) {
		return models.User{}, ErrEmailTaken
	}
	return s.repo.Create(dto), nil
}

// UpdateUser updates an existing user. A user keeping their own email does
// not conflict with themselves, so the uniqueness check excludes the
// user's own id.
func (s *UserService) UpdateUser(id int, dto models.UserUpdateDTO) error {
	if _, ok := s.repo.GetByID(id); !ok {
		return ErrNotFound
	}
	if dto.Email != nil && s.repo.ExistsByEmail(*dto.Email, id) {
		return ErrEmailTaken
	}
	if !s.repo.Update(id, dto) {
		return ErrNotFound
	}
	return nil
}

// DeleteUser deletes a user by id.
func (s *UserService) DeleteUser(id int) error {
	if !s.repo.Delete(id) {
		return ErrNotFound
	}
	return nil
}
