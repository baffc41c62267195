package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fieldops/installation-service/internal/domain"
	"github.com/fieldops/installation-service/internal/events"
	"github.com/fieldops/installation-service/internal/repository"
	apperrors "github.com/fieldops/installation-service/pkg/util"
)

// InstallationService coordinates installation job workflows, scoped to the
// calling user.
type InstallationService struct {
	installations repository.InstallationRepository
	statuses      repository.StatusRepository
	dispatcher    events.Dispatcher
}

// InstallationInput describes a create or full-update payload.
type InstallationInput struct {
	CustomerName    string
	Address         string
	AppointmentDate *time.Time
	StatusID        *int64
}

// InstallationPatch describes a partial update; nil fields are left unchanged.
type InstallationPatch struct {
	CustomerName    *string
	Address         *string
	AppointmentDate *time.Time
	StatusID        *int64
}

// NewInstallationService constructs the service.
func NewInstallationService(installations repository.InstallationRepository, statuses repository.StatusRepository, dispatcher events.Dispatcher) *InstallationService {
	return &InstallationService{
		installations: installations,
		statuses:      statuses,
		dispatcher:    dispatcher,
	}
}

// Create persists a new installation owned by the caller. A supplied status
// reference must resolve to a status the caller owns.
func (s *InstallationService) Create(ctx context.Context, userID string, input InstallationInput) (*domain.Installation, error) {
	if err := s.validateInput(ctx, userID, &input); err != nil {
		return nil, err
	}

	installation := &domain.Installation{
		UserID:          userID,
		CustomerName:    input.CustomerName,
		Address:         input.Address,
		AppointmentDate: input.AppointmentDate,
		StatusID:        input.StatusID,
	}
	if err := s.installations.Create(ctx, installation); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventInstallationCreated,
		UserID: userID,
		Payload: events.InstallationCreatedPayload{
			InstallationID: installation.ID,
			CustomerName:   installation.CustomerName,
			StatusID:       installation.StatusID,
		},
	})
	return installation, nil
}

// List returns the caller's installations, most recently created first.
func (s *InstallationService) List(ctx context.Context, userID string) ([]domain.Installation, error) {
	return s.installations.ListByOwner(ctx, userID)
}

// Get fetches a single installation owned by the caller.
func (s *InstallationService) Get(ctx context.Context, userID string, id int64) (*domain.Installation, error) {
	return s.installations.GetByOwner(ctx, id, userID)
}

// Update rewrites all mutable fields of a caller-owned installation.
func (s *InstallationService) Update(ctx context.Context, userID string, id int64, input InstallationInput) (*domain.Installation, error) {
	if err := s.validateInput(ctx, userID, &input); err != nil {
		return nil, err
	}

	installation, err := s.installations.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	oldStatusID := installation.StatusID
	installation.CustomerName = input.CustomerName
	installation.Address = input.Address
	installation.AppointmentDate = input.AppointmentDate
	installation.StatusID = input.StatusID
	if err := s.installations.Update(ctx, installation); err != nil {
		return nil, err
	}

	s.publishStatusChange(ctx, installation, oldStatusID)
	return installation, nil
}

// Patch applies a partial update to a caller-owned installation.
func (s *InstallationService) Patch(ctx context.Context, userID string, id int64, patch InstallationPatch) (*domain.Installation, error) {
	installation, err := s.installations.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	input := InstallationInput{
		CustomerName:    installation.CustomerName,
		Address:         installation.Address,
		AppointmentDate: installation.AppointmentDate,
		StatusID:        installation.StatusID,
	}
	if patch.CustomerName != nil {
		input.CustomerName = *patch.CustomerName
	}
	if patch.Address != nil {
		input.Address = *patch.Address
	}
	if patch.AppointmentDate != nil {
		input.AppointmentDate = patch.AppointmentDate
	}
	if patch.StatusID != nil {
		input.StatusID = patch.StatusID
	}
	if err := s.validateInput(ctx, userID, &input); err != nil {
		return nil, err
	}

	oldStatusID := installation.StatusID
	installation.CustomerName = input.CustomerName
	installation.Address = input.Address
	installation.AppointmentDate = input.AppointmentDate
	installation.StatusID = input.StatusID
	if err := s.installations.Update(ctx, installation); err != nil {
		return nil, err
	}

	s.publishStatusChange(ctx, installation, oldStatusID)
	return installation, nil
}

// Delete removes a caller-owned installation.
func (s *InstallationService) Delete(ctx context.Context, userID string, id int64) error {
	return s.installations.DeleteByOwner(ctx, id, userID)
}

func (s *InstallationService) validateInput(ctx context.Context, userID string, input *InstallationInput) error {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Address = strings.TrimSpace(input.Address)

	details := map[string]any{}
	if input.CustomerName == "" {
		details["customer_name"] = "required"
	} else if len(input.CustomerName) > domain.MaxLabelLength {
		details["customer_name"] = "max_length"
	}
	if input.Address == "" {
		details["address"] = "required"
	} else if len(input.Address) > domain.MaxLabelLength {
		details["address"] = "max_length"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("customer_name and address are required", details)
	}

	if input.StatusID != nil {
		if _, err := s.statuses.GetByOwner(ctx, *input.StatusID, userID); err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewValidationError("status not found", map[string]any{"status": *input.StatusID})
			}
			return err
		}
	}
	return nil
}

func (s *InstallationService) publishStatusChange(ctx context.Context, installation *domain.Installation, oldStatusID *int64) {
	if sameStatusRef(oldStatusID, installation.StatusID) {
		return
	}
	s.publish(ctx, events.Event{
		Type:   events.EventInstallationStatusChanged,
		UserID: installation.UserID,
		Payload: events.InstallationStatusChangedPayload{
			InstallationID: installation.ID,
			OldStatusID:    oldStatusID,
			NewStatusID:    installation.StatusID,
		},
	})
}

func (s *InstallationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func sameStatusRef(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
