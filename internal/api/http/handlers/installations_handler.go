package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/installation-service/internal/api/dto"
	"github.com/fieldops/installation-service/internal/auth"
	"github.com/fieldops/installation-service/internal/service"
	apperrors "github.com/fieldops/installation-service/pkg/util"
)

// InstallationsHandler manages installation job endpoints.
type InstallationsHandler struct {
	service *service.InstallationService
}

// NewInstallationsHandler constructs handler.
func NewInstallationsHandler(installationService *service.InstallationService) *InstallationsHandler {
	return &InstallationsHandler{service: installationService}
}

// List GET /installations/installations.
func (h *InstallationsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	installations, err := h.service.List(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstallationResponses(installations)})
}

// Create POST /installations/installations.
func (h *InstallationsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.InstallationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := installationInput(req)
	if err != nil {
		return err
	}
	installation, err := h.service.Create(c.Context(), principal.User.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// Get GET /installations/installations/:id.
func (h *InstallationsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseRowID(c)
	if err != nil {
		return err
	}
	installation, err := h.service.Get(c.Context(), principal.User.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// Update PUT /installations/installations/:id.
func (h *InstallationsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseRowID(c)
	if err != nil {
		return err
	}
	var req dto.InstallationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input, err := installationInput(req)
	if err != nil {
		return err
	}
	installation, err := h.service.Update(c.Context(), principal.User.ID, id, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// Patch PATCH /installations/installations/:id.
func (h *InstallationsHandler) Patch(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseRowID(c)
	if err != nil {
		return err
	}
	var req dto.InstallationPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patch := service.InstallationPatch{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		StatusID:     req.Status,
	}
	if req.AppointmentDate != nil {
		appointment, err := dto.ParseDate(*req.AppointmentDate)
		if err != nil {
			return apperrors.NewValidationError("invalid appointment_date", map[string]any{"appointment_date": "format"})
		}
		patch.AppointmentDate = appointment
	}

	installation, err := h.service.Patch(c.Context(), principal.User.ID, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewInstallationResponse(installation)})
}

// Delete DELETE /installations/installations/:id.
func (h *InstallationsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseRowID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), principal.User.ID, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func installationInput(req dto.InstallationRequest) (service.InstallationInput, error) {
	appointment, err := dto.ParseDate(req.AppointmentDate)
	if err != nil {
		return service.InstallationInput{}, apperrors.NewValidationError("invalid appointment_date", map[string]any{"appointment_date": "format"})
	}
	return service.InstallationInput{
		CustomerName:    req.CustomerName,
		Address:         req.Address,
		AppointmentDate: appointment,
		StatusID:        req.Status,
	}, nil
}
