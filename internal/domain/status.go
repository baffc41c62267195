package domain

import "time"

// MaxLabelLength bounds the status label and notes columns.
const MaxLabelLength = 255

// Status is a named progress label used to track installation jobs.
// Every row belongs to the user who created it.
type Status struct {
	ID     int64
	Label  string
	Notes  string
	Date   time.Time
	UserID string
}
