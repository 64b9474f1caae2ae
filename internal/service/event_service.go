package service

import (
	"context"

	"eventsite/internal/models"
	"eventsite/internal/repository"
)

// EventService reads the event catalogue and its registrants. Events are
// populated externally; nothing here mutates them.
type EventService struct {
	events repository.Events
	regs   repository.Registrations
}

func NewEventService(events repository.Events, regs repository.Registrations) *EventService {
	return &EventService{events: events, regs: regs}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.List(ctx)
}

// GetBySlug returns (nil, nil) for an unknown slug; the handler falls
// through to the not-found response.
func (s *EventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return s.events.GetBySlug(ctx, slug)
}

func (s *EventService) Registered(ctx context.Context, eventID int) ([]models.Registration, error) {
	return s.regs.ListByEvent(ctx, eventID)
}
