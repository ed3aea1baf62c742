package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	boardHTTP "taskboard/internal/board/delivery/http"
	contactHTTP "taskboard/internal/contact/delivery/http"
	"taskboard/internal/middleware"
	sessionHTTP "taskboard/internal/session/delivery/http"
	syncHTTP "taskboard/internal/sync/delivery/http"
	taskHTTP "taskboard/internal/task/delivery/http"
	"taskboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	sessionHandler sessionHTTP.Handler
	taskHandler    taskHTTP.Handler
	contactHandler contactHTTP.Handler
	boardHandler   boardHTTP.Handler
	syncHandler    syncHTTP.Handler

	metricsHandler http.Handler
	readyCheck     func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	SessionHandler sessionHTTP.Handler
	TaskHandler    taskHTTP.Handler
	ContactHandler contactHTTP.Handler
	BoardHandler   boardHTTP.Handler
	SyncHandler    syncHTTP.Handler

	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
	// ReadyCheck backs /ready. Nil means always ready.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		sessionHandler: cfg.SessionHandler,
		taskHandler:    cfg.TaskHandler,
		contactHandler: cfg.ContactHandler,
		boardHandler:   cfg.BoardHandler,
		syncHandler:    cfg.SyncHandler,
		metricsHandler: cfg.MetricsHandler,
		readyCheck:     cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler returns the gin engine, for tests and embedding.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionHandler == nil {
		return errors.New("session handler is required")
	}
	return nil
}
