package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/session"
	"taskboard/pkg/log"
)

// Handler is the HTTP surface of the session manager.
type Handler interface {
	Login(c *gin.Context)
	Register(c *gin.Context)
	Guest(c *gin.Context)
	Logout(c *gin.Context)
	Current(c *gin.Context)
	Guard(c *gin.Context)
}

type handler struct {
	l       log.Logger
	manager session.Manager
}

// New creates the session HTTP handler.
func New(l log.Logger, manager session.Manager) Handler {
	return &handler{
		l:       l,
		manager: manager,
	}
}
