package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"quick-task-management/internal/model"
)

// Request headers identifying the caller.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"
)

// AnonymousUserID is used when a request carries no user header.
const AnonymousUserID = "anonymous"

type scopeKey struct{}

// Scope stores the caller's model.Scope in the request context.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUserID)),
			Username: strings.TrimSpace(c.GetHeader(HeaderUsername)),
		}
		if sc.UserID == "" {
			sc.UserID = AnonymousUserID
		}
		c.Request = c.Request.WithContext(SetScope(c.Request.Context(), sc))
		c.Next()
	}
}

// SetScope returns a copy of ctx carrying sc.
func SetScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScope returns the scope stored by Scope, or an anonymous scope.
func GetScope(ctx context.Context) model.Scope {
	if sc, ok := ctx.Value(scopeKey{}).(model.Scope); ok {
		return sc
	}
	return model.Scope{UserID: AnonymousUserID}
}
