package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"eventsite/internal/models"

	"github.com/google/uuid"
)

type RegistrationSQLite struct {
	db *sql.DB
}

func NewRegistrationSQLite(db *sql.DB) *RegistrationSQLite { return &RegistrationSQLite{db: db} }

var _ Registrations = (*RegistrationSQLite)(nil)

const (
	insertRegistrationSQL      = `INSERT INTO registrations (id, event_id, name, comment, created) VALUES (?, ?, ?, ?, ?)`
	selectRegistrationsByEvent = `SELECT id, event_id, name, comment, created FROM registrations WHERE event_id = ? ORDER BY created ASC`
)

// Insert stores a new registration. If ID or Created are empty, they're set.
func (r *RegistrationSQLite) Insert(ctx context.Context, reg models.Registration) (models.Registration, error) {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.Created.IsZero() {
		reg.Created = time.Now().UTC()
	} else {
		reg.Created = reg.Created.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertRegistrationSQL,
		reg.ID,
		reg.EventID,
		reg.Name,
		reg.Comment,
		reg.Created.Format(sqliteTimeLayout),
	)
	if err != nil {
		return models.Registration{}, fmt.Errorf("insert registration for event %d: %w", reg.EventID, err)
	}
	return reg, nil
}

// ListByEvent returns all registrations for an event, oldest first.
func (r *RegistrationSQLite) ListByEvent(ctx context.Context, eventID int) ([]models.Registration, error) {
	rows, err := r.db.QueryContext(ctx, selectRegistrationsByEvent, eventID)
	if err != nil {
		return nil, fmt.Errorf("select registrations for event %d: %w", eventID, err)
	}
	defer rows.Close()

	out := make([]models.Registration, 0, 32)
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.Name, &reg.Comment, &reg.Created); err != nil {
			return nil, fmt.Errorf("scan registration row: %w", err)
		}
		reg.Created = reg.Created.UTC()
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registration rows: %w", err)
	}
	return out, nil
}
