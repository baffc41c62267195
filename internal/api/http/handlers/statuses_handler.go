package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fieldops/installation-service/internal/api/dto"
	"github.com/fieldops/installation-service/internal/auth"
	"github.com/fieldops/installation-service/internal/service"
	apperrors "github.com/fieldops/installation-service/pkg/util"
)

// StatusesHandler manages status label endpoints.
type StatusesHandler struct {
	service *service.StatusService
}

// NewStatusesHandler constructs handler.
func NewStatusesHandler(statusService *service.StatusService) *StatusesHandler {
	return &StatusesHandler{service: statusService}
}

// List GET /installations/status.
func (h *StatusesHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	statuses, err := h.service.List(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStatusResponses(statuses)})
}

// Create POST /installations/status.
func (h *StatusesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status, err := h.service.Create(c.Context(), principal.User.ID, service.StatusInput{
		Label: req.Status,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewStatusResponse(status)})
}

// Get GET /installations/status/:id.
func (h *StatusesHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseRowID(c)
	if err != nil {
		return err
	}
	status, err := h.service.Get(c.Context(), principal.User.ID, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStatusResponse(status)})
}

// Update PUT /installations/status/:id.
func (h *StatusesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseRowID(c)
	if err != nil {
		return err
	}
	var req dto.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status, err := h.service.Update(c.Context(), principal.User.ID, id, service.StatusInput{
		Label: req.Status,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStatusResponse(status)})
}

// Patch PATCH /installations/status/:id.
func (h *StatusesHandler) Patch(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	id, err := parseRowID(c)
	if err != nil {
		return err
	}
	var req dto.StatusPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status, err := h.service.Patch(c.Context(), principal.User.ID, id, service.StatusPatch{
		Label: req.Status,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStatusResponse(status)})
}

// Delete DELETE /installations/status/:id.
func (h *StatusesHandler) Delete(c *fiber.Ctx) error {
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

// parseRowID reads the :id path parameter. Non-numeric ids behave as absent
// rows rather than malformed requests.
func parseRowID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFound("resource", nil)
	}
	return id, nil
}
