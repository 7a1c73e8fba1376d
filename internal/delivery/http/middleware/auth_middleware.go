package middleware

import (
	"strings"

	"petclinic/internal/delivery/http/response"
	"petclinic/internal/domain/entity"
	"petclinic/internal/domain/repository"
	"petclinic/internal/domain/service"
	"petclinic/internal/errors"

	"github.com/labstack/echo/v4"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
// Tokens only carry the account id, so the role is resolved against the user
// store on every request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate is the core middleware function that validates the JWT token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Parse(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.Unauthorized(c, "UNKNOWN_TOKEN_SUBJECT", "Token subject no longer exists")
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyRole, user.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "ROLE_FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}
