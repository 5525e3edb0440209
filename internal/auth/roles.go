package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/labtrack/labtrack-service/internal/domain"
	apperrors "github.com/labtrack/labtrack-service/pkg/util/errorutil"
)

// AuthorizeRoles ensures the principal has one of the allowed roles.
func AuthorizeRoles(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures a principal is present.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// Allow gates a route by the roles the policy table grants for action.
func Allow(action Action) fiber.Handler {
	roles, ok := routePolicy[action]
	if !ok {
		return RequireAuthenticated()
	}
	return AuthorizeRoles(roles...)
}
