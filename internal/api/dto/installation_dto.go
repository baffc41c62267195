package dto

import "github.com/fieldops/installation-service/internal/domain"

// InstallationRequest payload for create and full update. AppointmentDate is
// a YYYY-MM-DD string.
type InstallationRequest struct {
	CustomerName    string `json:"customer_name"`
	Address         string `json:"address"`
	AppointmentDate string `json:"appointment_date"`
	Status          *int64 `json:"status"`
}

// InstallationPatchRequest payload for partial update.
type InstallationPatchRequest struct {
	CustomerName    *string `json:"customer_name"`
	Address         *string `json:"address"`
	AppointmentDate *string `json:"appointment_date"`
	Status          *int64  `json:"status"`
}

// InstallationResponse wire representation of an installation row.
type InstallationResponse struct {
	ID              int64   `json:"id"`
	CustomerName    string  `json:"customer_name"`
	Address         string  `json:"address"`
	AppointmentDate *string `json:"appointment_date"`
	DateCreated     string  `json:"date_created"`
	DateModified    string  `json:"date_modified"`
	Status          *int64  `json:"status"`
	User            string  `json:"user"`
}

// NewInstallationResponse maps a domain installation to its wire shape.
func NewInstallationResponse(installation *domain.Installation) InstallationResponse {
	return InstallationResponse{
		ID:              installation.ID,
		CustomerName:    installation.CustomerName,
		Address:         installation.Address,
		AppointmentDate: FormatDatePtr(installation.AppointmentDate),
		DateCreated:     FormatDate(installation.DateCreated),
		DateModified:    FormatDate(installation.DateModified),
		Status:          installation.StatusID,
		User:            installation.UserID,
	}
}

// NewInstallationResponses maps a slice of domain installations.
func NewInstallationResponses(installations []domain.Installation) []InstallationResponse {
	items := make([]InstallationResponse, 0, len(installations))
	for i := range installations {
		items = append(items, NewInstallationResponse(&installations[i]))
	}
	return items
}
