package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/bucket", h.Move)

		tasks.POST("/:id/subtasks", h.AddSubtask)
		tasks.PUT("/:id/subtasks/:index", h.UpdateSubtask)
		tasks.POST("/:id/subtasks/:index/toggle", h.ToggleSubtask)
		tasks.DELETE("/:id/subtasks/:index", h.DeleteSubtask)
	}
}
