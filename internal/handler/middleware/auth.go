package middleware

import (
	"log/slog"
	"net/http"

	"stand-ledger/internal/domain/staff"
	"stand-ledger/internal/pkg/cookie"
	"stand-ledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireStaff aborts with 401 unless the request carries a valid staff session.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Staff session required"},
			})
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired session"},
			})
			return
		}
		if !actor.IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Staff session required"},
			})
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// OptionalStaff attaches the actor when a valid session is present and never aborts.
func (m *AuthMiddleware) OptionalStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.SessionToken(c)
		if token == "" {
			c.Next()
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// GetActor returns the request's actor, or a guest when no session was attached.
func GetActor(c *gin.Context) staff.Actor {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return staff.Guest()
	}
	actor, ok := v.(staff.Actor)
	if !ok {
		return staff.Guest()
	}
	return actor
}
