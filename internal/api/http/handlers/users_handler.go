package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/api/dto"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/repository"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// UsersHandler exposes account management.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	accounts, err := h.users.List(c.UserContext(), p, repository.AccountFilter{
		Role:   optionalQuery[domain.Role](c, "role"),
		Status: optionalQuery[domain.AccountStatus](c, "status"),
		Search: c.Query("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromAccounts(accounts)})
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req dto.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	account, err := h.users.Create(c.UserContext(), p, service.UserCreateInput{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Role:               req.Role,
		Country:            req.Country,
		TelegramCustomerID: req.TelegramCustomerID,
		ShowroomCode:       req.ShowroomCode,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromAccount(*account)})
}

// UpdateStatus handles PATCH /users/:id/status.
func (h *UsersHandler) UpdateStatus(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateUserStatusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	account, err := h.users.SetStatus(c.UserContext(), p, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromAccount(*account)})
}
