package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldops/installation-service/internal/domain"
	"github.com/fieldops/installation-service/internal/events"
	"github.com/fieldops/installation-service/internal/repository"
	apperrors "github.com/fieldops/installation-service/pkg/util"
)

// StatusService coordinates status label workflows. Every operation is scoped
// to the calling user; rows owned by other users behave as absent.
type StatusService struct {
	statuses   repository.StatusRepository
	dispatcher events.Dispatcher
}

// StatusInput describes a create or full-update payload.
type StatusInput struct {
	Label string
	Notes string
}

// StatusPatch describes a partial update; nil fields are left unchanged.
type StatusPatch struct {
	Label *string
	Notes *string
}

// NewStatusService constructs the service.
func NewStatusService(statuses repository.StatusRepository, dispatcher events.Dispatcher) *StatusService {
	return &StatusService{statuses: statuses, dispatcher: dispatcher}
}

// Create persists a new status owned by the caller.
func (s *StatusService) Create(ctx context.Context, userID string, input StatusInput) (*domain.Status, error) {
	label, notes, err := validateStatusInput(input)
	if err != nil {
		return nil, err
	}

	status := &domain.Status{
		Label:  label,
		Notes:  notes,
		UserID: userID,
	}
	if err := s.statuses.Create(ctx, status); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventStatusCreated,
		UserID: userID,
		Payload: events.StatusCreatedPayload{
			StatusID: status.ID,
			Label:    status.Label,
		},
	})
	return status, nil
}

// List returns the caller's statuses ordered by descending label.
func (s *StatusService) List(ctx context.Context, userID string) ([]domain.Status, error) {
	return s.statuses.ListByOwner(ctx, userID)
}

// Get fetches a single status owned by the caller.
func (s *StatusService) Get(ctx context.Context, userID string, id int64) (*domain.Status, error) {
	return s.statuses.GetByOwner(ctx, id, userID)
}

// Update rewrites label and notes of a caller-owned status.
func (s *StatusService) Update(ctx context.Context, userID string, id int64, input StatusInput) (*domain.Status, error) {
	label, notes, err := validateStatusInput(input)
	if err != nil {
		return nil, err
	}

	status, err := s.statuses.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	status.Label = label
	status.Notes = notes
	if err := s.statuses.Update(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// Patch applies a partial update to a caller-owned status.
func (s *StatusService) Patch(ctx context.Context, userID string, id int64, patch StatusPatch) (*domain.Status, error) {
	status, err := s.statuses.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	input := StatusInput{Label: status.Label, Notes: status.Notes}
	if patch.Label != nil {
		input.Label = *patch.Label
	}
	if patch.Notes != nil {
		input.Notes = *patch.Notes
	}
	label, notes, err := validateStatusInput(input)
	if err != nil {
		return nil, err
	}

	status.Label = label
	status.Notes = notes
	if err := s.statuses.Update(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

// Delete removes a caller-owned status. A status still referenced by an
// installation is protected and the delete fails.
func (s *StatusService) Delete(ctx context.Context, userID string, id int64) error {
	if err := s.statuses.DeleteByOwner(ctx, id, userID); err != nil {
		if err == repository.ErrProtected {
			return apperrors.NewConflict("status is referenced by installations", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

func (s *StatusService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func validateStatusInput(input StatusInput) (string, string, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return "", "", apperrors.NewValidationError("status is required", map[string]any{"status": "required"})
	}
	if len(label) > domain.MaxLabelLength {
		return "", "", apperrors.NewValidationError("status exceeds maximum length", map[string]any{"status": "max_length"})
	}
	if len(input.Notes) > domain.MaxLabelLength {
		return "", "", apperrors.NewValidationError("notes exceeds maximum length", map[string]any{"notes": "max_length"})
	}
	return label, input.Notes, nil
}
