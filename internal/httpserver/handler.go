package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	boardHTTP "taskboard/internal/board/delivery/http"
	contactHTTP "taskboard/internal/contact/delivery/http"
	"taskboard/internal/model"
	sessionHTTP "taskboard/internal/session/delivery/http"
	syncHTTP "taskboard/internal/sync/delivery/http"
	taskHTTP "taskboard/internal/task/delivery/http"
	"taskboard/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	response.InternalError(c, fmt.Errorf("panic: %v", recovered))
	c.Abort()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheckHandler)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.metricsHandler != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metricsHandler))
	}
}

// registerDomainRoutes mounts every domain under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	sessionHTTP.RegisterRoutes(api, srv.sessionHandler)

	if srv.taskHandler != nil {
		taskHTTP.RegisterRoutes(api, srv.taskHandler, srv.mw)
	}
	if srv.contactHandler != nil {
		contactHTTP.RegisterRoutes(api, srv.contactHandler, srv.mw)
	}
	if srv.boardHandler != nil {
		boardHTTP.RegisterRoutes(api, srv.boardHandler, srv.mw)
	}
	if srv.syncHandler != nil {
		syncHTTP.RegisterRoutes(api, srv.syncHandler, srv.mw)
	}

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
	return nil
}
