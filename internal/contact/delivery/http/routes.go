package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

// RegisterRoutes maps the contact endpoints. All of them require a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	contacts := rg.Group("/contacts", mw.Auth())
	{
		contacts.GET("", h.List)
		contacts.POST("", h.Create)
		contacts.GET("/:id", h.Detail)
		contacts.PATCH("/:id", h.Update)
		contacts.DELETE("/:id", h.Delete)
	}
}
