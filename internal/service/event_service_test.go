package service

import (
	"context"
	"errors"
	"testing"

	"eventsite/internal/models"
)

// mockEventRepo is an in-test mock for repository.Events.
type mockEventRepo struct {
	events  []models.Event
	listErr error
	bySlug  map[string]*models.Event
	slugErr error
}

func (m *mockEventRepo) List(ctx context.Context) ([]models.Event, error) {
	return m.events, m.listErr
}

func (m *mockEventRepo) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return m.bySlug[slug], m.slugErr
}

func (m *mockEventRepo) Create(ctx context.Context, e models.Event) (int, error) {
	return 0, errors.New("not implemented")
}

func TestEventService_List(t *testing.T) {
	repo := &mockEventRepo{events: []models.Event{{ID: 1, Slug: "a"}, {ID: 2, Slug: "b"}}}
	svc := NewEventService(repo, &mockRegRepo{})

	events, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestEventService_GetBySlug(t *testing.T) {
	ev := &models.Event{ID: 3, Slug: "launch-party"}
	repo := &mockEventRepo{bySlug: map[string]*models.Event{ev.Slug: ev}}
	svc := NewEventService(repo, &mockRegRepo{})

	got, err := svc.GetBySlug(context.Background(), "launch-party")
	if err != nil || got == nil || got.ID != 3 {
		t.Fatalf("unexpected result: %+v (err=%v)", got, err)
	}

	// Unknown slugs resolve to nil so handlers can fall through to 404.
	got, err = svc.GetBySlug(context.Background(), "ghost")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for unknown slug, got %+v (err=%v)", got, err)
	}
}

func TestEventService_Registered(t *testing.T) {
	regRepo := &mockRegRepo{inserted: []models.Registration{{ID: "r1", EventID: 3, Name: "Alice"}}}
	svc := NewEventService(&mockEventRepo{}, regRepo)

	regs, err := svc.Registered(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regs) != 1 || regs[0].Name != "Alice" {
		t.Fatalf("unexpected registrations: %+v", regs)
	}
}
