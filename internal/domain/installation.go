package domain

import "time"

// Installation records a customer installation job. StatusID is optional and,
// when set, must reference a Status row; the database refuses to delete a
// referenced status.
type Installation struct {
	ID              int64
	UserID          string
	CustomerName    string
	Address         string
	AppointmentDate *time.Time
	StatusID        *int64
	DateCreated     time.Time
	DateModified    time.Time
}
