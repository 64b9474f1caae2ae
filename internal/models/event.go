package models

import "time"

// Event is a listed happening, addressed by its URL slug.
// Events are populated externally; this service only reads them.
type Event struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// Registration is a signup for an event with a free-text comment.
// The comment is stored sanitized, markup already stripped.
type Registration struct {
	ID      string    `json:"id"`
	EventID int       `json:"event_id"`
	Name    string    `json:"name"`
	Comment string    `json:"comment"`
	Created time.Time `json:"created"`
}
