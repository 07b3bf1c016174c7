package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/auth"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

// optionalQuery returns a pointer to the typed query value, or nil when the
// parameter is absent or "all".
func optionalQuery[T ~string](c *fiber.Ctx, key string) *T {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}
	value := T(raw)
	return &value
}

func principal(c *fiber.Ctx) (*auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	return p, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}
