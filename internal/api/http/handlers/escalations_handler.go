package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/api/dto"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// EscalationsHandler serves the escalation board.
type EscalationsHandler struct {
	escalations *service.EscalationService
}

// NewEscalationsHandler constructs handler.
func NewEscalationsHandler(escalations *service.EscalationService) *EscalationsHandler {
	return &EscalationsHandler{escalations: escalations}
}

// List handles GET /escalations.
func (h *EscalationsHandler) List(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	filter := service.EscalationFilter{
		Search:   c.Query("search"),
		Status:   optionalQuery[domain.EscalationStatus](c, "status"),
		Priority: optionalQuery[domain.Priority](c, "priority"),
		Country:  c.Query("country"),
	}
	records, stats, err := h.escalations.List(c.UserContext(), p, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromEscalationList(records, stats))
}

// UpdateStatus handles PATCH /escalations/:id/status.
func (h *EscalationsHandler) UpdateStatus(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEscalationStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	updated, err := h.escalations.UpdateStatus(c.UserContext(), p, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromEscalation(*updated)})
}
