package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStatusCreated             EventType = "status_created"
	EventInstallationCreated       EventType = "installation_created"
	EventInstallationStatusChanged EventType = "installation_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StatusCreatedPayload payload.
type StatusCreatedPayload struct {
	StatusID int64  `json:"status_id"`
	Label    string `json:"label"`
}

// InstallationCreatedPayload payload.
type InstallationCreatedPayload struct {
	InstallationID int64  `json:"installation_id"`
	CustomerName   string `json:"customer_name"`
	StatusID       *int64 `json:"status_id,omitempty"`
}

// InstallationStatusChangedPayload payload.
type InstallationStatusChangedPayload struct {
	InstallationID int64  `json:"installation_id"`
	OldStatusID    *int64 `json:"old_status_id,omitempty"`
	NewStatusID    *int64 `json:"new_status_id,omitempty"`
}
