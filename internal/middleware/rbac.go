package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/sportsmaster/booking-api/internal/models"
	appErrors "github.com/sportsmaster/booking-api/pkg/errors"
	"github.com/sportsmaster/booking-api/pkg/response"
)

type roleService interface {
	HasRole(ctx context.Context, email string, role models.UserRole) (bool, error)
}

// RequireRole allows the request through only when the caller's stored
// account currently holds one of the given roles.
//
// Tokens carry only identity, not role, so the persisted role is
// consulted on every guarded request; a promotion or demotion takes
// effect immediately without reissuing tokens.
func RequireRole(users roleService, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		for _, role := range roles {
			ok, err := users.HasRole(c.Request.Context(), claims.Email, role)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			if ok {
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
