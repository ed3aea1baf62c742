package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskboard/internal/model"
	"taskboard/pkg/log"
	"taskboard/pkg/response"
)

// Auth rejects requests when no session is stored and puts the session
// Scope into the request context otherwise.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.sessions.Current()
		if s.State() != model.SessionAuthenticated {
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.NewScope(s))
		if s.Username != "" {
			ctx = context.WithValue(ctx, log.UserKey, s.Username)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
