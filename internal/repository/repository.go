package repository

import (
	"context"
	"database/sql"

	"eventsite/internal/models"
)

type Users interface {
	Create(name, username, passwordHash string, admin bool) (int, error)
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	List() ([]models.User, error)
}

// Events is read-only from the service's point of view; Create exists for
// seeding and tests.
type Events interface {
	List(ctx context.Context) ([]models.Event, error)
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
	Create(ctx context.Context, e models.Event) (int, error)
}

type Registrations interface {
	ListByEvent(ctx context.Context, eventID int) ([]models.Registration, error)
	Insert(ctx context.Context, r models.Registration) (models.Registration, error)
}

type Repository struct {
	Users         Users
	Events        Events
	Registrations Registrations
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:         NewUserRepository(db),
		Events:        NewEventSQLite(db),
		Registrations: NewRegistrationSQLite(db),
	}
}
