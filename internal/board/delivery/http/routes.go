package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	b := rg.Group("/board", mw.Auth())
	{
		b.GET("", h.Board)
		b.GET("/summary", h.Summary)
	}
}
