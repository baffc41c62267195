package dto

import "github.com/fieldops/installation-service/internal/domain"

// StatusRequest payload for create and full update.
type StatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// StatusPatchRequest payload for partial update.
type StatusPatchRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// StatusResponse wire representation of a status row.
type StatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
	Date   string `json:"date"`
	User   string `json:"user"`
}

// NewStatusResponse maps a domain status to its wire shape.
func NewStatusResponse(status *domain.Status) StatusResponse {
	return StatusResponse{
		ID:     status.ID,
		Status: status.Label,
		Notes:  status.Notes,
		Date:   FormatDate(status.Date),
		User:   status.UserID,
	}
}

// NewStatusResponses maps a slice of domain statuses.
func NewStatusResponses(statuses []domain.Status) []StatusResponse {
	items := make([]StatusResponse, 0, len(statuses))
	for i := range statuses {
		items = append(items, NewStatusResponse(&statuses[i]))
	}
	return items
}
