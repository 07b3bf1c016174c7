package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/api/dto"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// InteractionsHandler manages interaction endpoints.
type InteractionsHandler struct {
	interactions *service.InteractionService
}

// NewInteractionsHandler constructs handler.
func NewInteractionsHandler(interactions *service.InteractionService) *InteractionsHandler {
	return &InteractionsHandler{interactions: interactions}
}

// List handles GET /interactions.
func (h *InteractionsHandler) List(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	filter := service.InteractionFilter{
		Status:     optionalQuery[domain.InteractionStatus](c, "status"),
		Priority:   optionalQuery[domain.Priority](c, "priority"),
		CustomerID: c.Query("customer_id"),
	}
	interactions, err := h.interactions.List(c.UserContext(), p, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromInteractions(interactions)})
}

// Timeline handles GET /interactions/timeline.
func (h *InteractionsHandler) Timeline(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	interactions, err := h.interactions.Timeline(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromInteractions(interactions)})
}

// Create handles POST /interactions.
func (h *InteractionsHandler) Create(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req dto.CreateInteractionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	interaction, err := h.interactions.Create(c.UserContext(), p, service.InteractionCreateInput{
		CustomerID:   req.CustomerID,
		Type:         req.Type,
		Message:      req.Message,
		Priority:     req.Priority,
		NextAction:   req.NextAction,
		FollowUpDate: req.FollowUpDate,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromInteraction(*interaction)})
}

// Escalate handles POST /interactions/:id/escalate.
func (h *InteractionsHandler) Escalate(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req dto.EscalateRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return err
		}
		if err := dto.Validate(req); err != nil {
			return err
		}
	}

	result, err := h.interactions.Escalate(c.UserContext(), p, c.Params("id"), req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EscalatedInteractionResponse{
		Interaction: dto.FromInteraction(*result.Interaction),
		Escalation:  dto.FromEscalation(*result.Escalation),
		Message:     "Interaction has been escalated to " + result.Interaction.EscalationLevel.Label(),
	}})
}
