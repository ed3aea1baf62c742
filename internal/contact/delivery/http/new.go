package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/contact"
	"taskboard/pkg/log"
)

// Handler is the public interface for the contact HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc contact.UseCase
}

// New creates a new HTTP handler for the contact domain.
func New(l log.Logger, uc contact.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
