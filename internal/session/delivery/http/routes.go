package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the auth endpoints. None of them require a session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/guest", h.Guest)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", h.Current)
		auth.GET("/guard", h.Guard)
	}
}
