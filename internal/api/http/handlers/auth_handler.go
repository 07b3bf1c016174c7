package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/api/dto"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// AuthHandler exposes login, logout and caller introspection.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:       result.Token,
		ExpiresAt:   result.ExpiresAt,
		User:        result.Identity,
		Permissions: result.Permissions,
		Navigation:  dto.NavigationFor(result.Permissions),
	}})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.UserContext(), p.SessionID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MeResponse{
		User:        p.Identity,
		Permissions: p.Permissions,
		Navigation:  dto.NavigationFor(p.Permissions),
	}})
}

// Policy handles GET /policy.
func (h *AuthHandler) Policy(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.PolicyEntries()})
}
