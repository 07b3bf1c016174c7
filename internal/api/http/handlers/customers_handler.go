package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/api/dto"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// CustomersHandler serves customer records.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	filter := service.CustomerFilter{
		Status:   optionalQuery[domain.CustomerStatus](c, "status"),
		Priority: optionalQuery[domain.Priority](c, "priority"),
		Country:  c.Query("country"),
		Showroom: c.Query("showroom"),
		Search:   c.Query("search"),
	}
	customers, err := h.customers.List(c.UserContext(), p, filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromCustomers(customers)})
}

// Get handles GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	customer, err := h.customers.Get(c.UserContext(), p, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromCustomer(*customer)})
}
