package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/sync"
	"taskboard/pkg/log"
)

// Handler exposes the sync outbox.
type Handler interface {
	Status(c *gin.Context)
	Retry(c *gin.Context)
}

type handler struct {
	l      log.Logger
	outbox sync.Outbox
}

func New(l log.Logger, outbox sync.Outbox) Handler {
	return &handler{
		l:      l,
		outbox: outbox,
	}
}
