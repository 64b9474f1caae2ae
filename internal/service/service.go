package service

import (
	"context"

	"eventsite/internal/config"
	"eventsite/internal/models"
	"eventsite/internal/repository"
)

// Authorization covers the credential lifecycle: account creation, token
// issuance on login and token verification on protected routes.
type Authorization interface {
	Register(name, username, password string) (*models.User, error)
	Login(username, password string) (string, error)
	// VerifyToken resolves the identity embedded in a bearer token against
	// the user store. A valid token whose user no longer exists yields
	// (nil, nil): unauthenticated, not an error.
	VerifyToken(accessToken string) (*models.User, error)
}

// Users exposes account reads; admin gating happens at the HTTP layer.
type Users interface {
	List() ([]models.User, error)
	GetByID(id int) (*models.User, error)
}

// Events exposes the read-only event catalogue and its registrants.
type Events interface {
	List(ctx context.Context) ([]models.Event, error)
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
	Registered(ctx context.Context, eventID int) ([]models.Registration, error)
}

// Registrations is the submission pipeline: validate, then sanitize, then
// persist. The steps are separate so the handler can echo invalid input
// back for form redisplay before anything touches the store.
type Registrations interface {
	Validate(in RegistrationInput) []FieldError
	Sanitize(in RegistrationInput) RegistrationInput
	Submit(ctx context.Context, eventID int, in RegistrationInput) (models.Registration, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Events
	Registrations
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg.JWTSecret, cfg.TokenLifetime),
		Users:         NewUserService(repos.Users),
		Events:        NewEventService(repos.Events, repos.Registrations),
		Registrations: NewRegistrationService(repos.Registrations),
	}
}
