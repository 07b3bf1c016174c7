package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/showroom-crm/internal/domain"
	apperrors "github.com/spec-kit/showroom-crm/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	SessionID   string
	Identity    domain.Identity
	Permissions domain.PermissionSet
}

// SessionLookup loads a live session by id. Implementations return a nil
// session, not an error, when the session is unknown or expired.
type SessionLookup interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions SessionLookup
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions SessionLookup) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	session, err := m.sessions.Get(c.UserContext(), claims.SessionID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if session == nil {
		return apperrors.NewUnauthorized("session expired")
	}

	identity := session.Identity
	c.Locals(principalKey, &Principal{
		SessionID:   session.ID,
		Identity:    identity,
		Permissions: ResolvePermissions(&identity),
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
