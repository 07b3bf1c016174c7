package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/domain"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireView ensures the caller's permission set may open the view.
func RequireView(view View) fiber.Handler {
	return RequirePermission(func(p domain.PermissionSet) bool {
		return ViewAllowed(view, p)
	}, "you don't have permission to view this section")
}

// RequirePermission ensures the caller's permission set satisfies check.
func RequirePermission(check func(domain.PermissionSet) bool, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !check(principal.Permissions) {
			return apperrors.NewForbidden(message)
		}
		return c.Next()
	}
}
