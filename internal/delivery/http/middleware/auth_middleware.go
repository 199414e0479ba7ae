// Package middleware contains the HTTP middlewares of the application.
package middleware

import (
	"net/http"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys the auth middleware stores the caller's identity under.
const (
	keyUserID = "userID"
	keyRole   = "role"
	keyStaff  = "staff"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's
// identity on the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyRole, claims.Role)
		c.Set(keyStaff, claims.Staff)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given account
// role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(keyRole).(entity.Role)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: role information missing"})
			}

			if role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + string(requiredRole) + "' role"})
			}

			return next(c)
		}
	}
}

// ActorFromContext rebuilds the policy actor the Authenticate middleware
// stored on the context. ok is false on unauthenticated requests.
func ActorFromContext(c echo.Context) (policy.Actor, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)
	if !ok {
		return policy.Actor{}, false
	}

	role, ok := c.Get(keyRole).(entity.Role)
	if !ok {
		return policy.Actor{}, false
	}

	staff, _ := c.Get(keyStaff).(bool)

	return policy.Actor{ID: userID, Role: role, Staff: staff}, true
}
