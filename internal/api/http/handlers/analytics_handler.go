package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/api/dto"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// AnalyticsHandler serves dashboard reports.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Overview handles GET /overview.
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	report, err := h.analytics.Overview(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromOverview(report)})
}

// Performance handles GET /analytics/performance.
func (h *AnalyticsHandler) Performance(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	report, err := h.analytics.Performance(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromPerformance(report)})
}

// Team handles GET /analytics/team.
func (h *AnalyticsHandler) Team(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.analytics.Team(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromTeam(rows)})
}

// Showrooms handles GET /analytics/showrooms.
func (h *AnalyticsHandler) Showrooms(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	rows, err := h.analytics.Showrooms(c.UserContext(), p)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromShowrooms(rows)})
}
