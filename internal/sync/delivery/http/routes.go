package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	s := rg.Group("/sync", mw.Auth())
	{
		s.GET("", h.Status)
		s.POST("/retry", h.Retry)
	}
}
