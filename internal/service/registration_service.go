package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventsite/internal/models"
	"eventsite/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// RegistrationInput is the raw form payload for an event signup.
type RegistrationInput struct {
	Name    string `json:"name" validate:"required,max=64"`
	Comment string `json:"comment" validate:"required,max=400"`
}

// FieldError is one validation failure, shaped for form redisplay.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegistrationService implements the validate -> sanitize -> persist
// pipeline for event signups.
type RegistrationService struct {
	regs     repository.Registrations
	validate *validator.Validate
	policy   *bluemonday.Policy
}

func NewRegistrationService(regs repository.Registrations) *RegistrationService {
	return &RegistrationService{
		regs:     regs,
		validate: validator.New(),
		// StrictPolicy strips all markup; comments are plain text only.
		policy: bluemonday.StrictPolicy(),
	}
}

// Validate checks the structural rules on the input and returns a list of
// per-field messages, or nil when the input passes.
func (s *RegistrationService) Validate(in RegistrationInput) []FieldError {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		out = append(out, FieldError{Field: field, Message: messageFor(field, fe)})
	}
	return out
}

// Sanitize strips markup from the free-text fields so nothing executable
// reaches the store or a downstream renderer.
func (s *RegistrationService) Sanitize(in RegistrationInput) RegistrationInput {
	in.Name = strings.TrimSpace(s.policy.Sanitize(in.Name))
	in.Comment = strings.TrimSpace(s.policy.Sanitize(in.Comment))
	return in
}

// Submit persists an already validated and sanitized registration.
func (s *RegistrationService) Submit(ctx context.Context, eventID int, in RegistrationInput) (models.Registration, error) {
	return s.regs.Insert(ctx, models.Registration{
		EventID: eventID,
		Name:    in.Name,
		Comment: in.Comment,
	})
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
