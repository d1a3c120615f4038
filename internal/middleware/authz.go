package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/textter73/control-estudiantina/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const UserIDHeader = "X-User-ID"

type userLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Identify resolves the calling member from the X-User-ID header and stores
// the loaded user in the context for handlers and capability checks.
func Identify(users userLoader) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(UserIDHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing " + UserIDHeader + " header"},
			)
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid " + UserIDHeader + " header"},
			)
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unknown user"},
			)
			return
		}

		c.Set("user", user)

		c.Next()
	}
}

// Require rejects callers whose profiles do not grant the capability.
// Administrators pass every check.
func Require(capability domain.Capability) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		v, ok := c.Get("user")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "not identified"},
			)
			return
		}

		user, ok := v.(*domain.User)
		if !ok || !user.Can(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "missing capability: " + string(capability)},
			)
			return
		}

		c.Next()
	}
}
