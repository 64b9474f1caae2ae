package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventsite/internal/models"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

var _ Events = (*EventSQLite)(nil)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const sqliteTimeLayout = "2006-01-02 15:04:05"

const (
	selectEventsSQL   = `SELECT id, name, slug, description, created, updated FROM events ORDER BY created ASC`
	selectEventBySlug = `SELECT id, name, slug, description, created, updated FROM events WHERE slug = ?`
	insertEventSQL    = `INSERT INTO events (name, slug, description, created, updated) VALUES (?, ?, ?, ?, ?)`
)

// List returns all events ordered by creation time.
func (r *EventSQLite) List(ctx context.Context) ([]models.Event, error) {
	rows, err := r.db.QueryContext(ctx, selectEventsSQL)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	defer rows.Close()

	out := make([]models.Event, 0, 16)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate event rows: %w", err)
	}
	return out, nil
}

// GetBySlug fetches an event by slug. Returns (nil, nil) if not found.
func (r *EventSQLite) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx, selectEventBySlug, slug).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select event %q: %w", slug, err)
	}
	return &e, nil
}

// Create inserts an event and returns its id. Used by seeding and tests;
// the HTTP surface never writes events.
func (r *EventSQLite) Create(ctx context.Context, e models.Event) (int, error) {
	now := time.Now().UTC()
	if e.Created.IsZero() {
		e.Created = now
	}
	if e.Updated.IsZero() {
		e.Updated = now
	}
	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.Name,
		e.Slug,
		e.Description,
		e.Created.UTC().Format(sqliteTimeLayout),
		e.Updated.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert event %q: %w", e.Slug, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for event %q: %w", e.Slug, err)
	}
	return int(lastID), nil
}

// scanEvent reads one event row, tolerating a NULL description.
func scanEvent(scan func(dest ...any) error) (models.Event, error) {
	var (
		e    models.Event
		desc sql.NullString
	)
	if err := scan(&e.ID, &e.Name, &e.Slug, &desc, &e.Created, &e.Updated); err != nil {
		return models.Event{}, err
	}
	if desc.Valid {
		e.Description = desc.String
	}
	e.Created = e.Created.UTC()
	e.Updated = e.Updated.UTC()
	return e, nil
}
