package service

import (
	"eventsite/internal/models"
	"eventsite/internal/repository"
)

// UserService exposes account reads for the admin endpoints.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.List()
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	return s.users.GetByID(id)
}
