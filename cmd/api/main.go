package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"taskboard/config"
	_ "taskboard/docs" // Swagger docs
	boardHTTP "taskboard/internal/board/delivery/http"
	contactHTTP "taskboard/internal/contact/delivery/http"
	contactRemote "taskboard/internal/contact/repository/remote"
	contactUC "taskboard/internal/contact/usecase"
	"taskboard/internal/httpserver"
	"taskboard/internal/metrics"
	"taskboard/internal/middleware"
	"taskboard/internal/session"
	sessionHTTP "taskboard/internal/session/delivery/http"
	"taskboard/internal/sync"
	syncHTTP "taskboard/internal/sync/delivery/http"
	taskHTTP "taskboard/internal/task/delivery/http"
	taskRemote "taskboard/internal/task/repository/remote"
	taskUC "taskboard/internal/task/usecase"
	"taskboard/pkg/datemath"
	"taskboard/pkg/gcalendar"
	"taskboard/pkg/log"
	"taskboard/pkg/remote"
)

// @title       Taskboard API
// @description Kanban task and contact board backed by a remote REST storage API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Taskboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Remote API: %s", cfg.Remote.BaseURL)

	// 3. Session
	store, err := session.NewFileStore(cfg.Session.File)
	if err != nil {
		logger.Error(ctx, "Failed to open session store: ", err)
		return
	}
	authClient := remote.NewClient(cfg.Remote.BaseURL, remote.StaticToken(""), remote.WithTimeout(cfg.Remote.Timeout))
	stores := &storeLoader{}
	sessions := session.New(logger, store, authClient, stores.hooks(session.Config{
		GuestToken:  cfg.Remote.GuestToken,
		LoginPage:   cfg.Session.LoginPage,
		LandingPage: cfg.Session.LandingPage,
		PublicPages: cfg.Session.PublicPages,
	}))

	// 4. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// 5. Remote storage and outbox
	client := remote.NewClient(cfg.Remote.BaseURL, sessions,
		remote.WithTimeout(cfg.Remote.Timeout),
		remote.WithObserver(m.ObserveRemote),
	)
	outbox := sync.New(logger, client, sync.Config{
		MaxAttempts: cfg.Sync.MaxAttempts,
		Backoff:     cfg.Sync.Backoff,
	}, sync.WithGauge(m.SyncPending))

	// 6. Task and contact domains
	dateMath, err := datemath.NewParser(cfg.Board.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Board.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	taskOpts := []taskUC.Option{
		taskUC.WithOutbox(outbox),
		taskUC.WithMutationCounter(m),
	}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `taskboard calendar-auth` to generate token.json")
		} else {
			taskOpts = append(taskOpts, taskUC.WithCalendar(calendarClient, cfg.GoogleCalendar.CalendarID))
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	tasks := taskUC.New(logger, taskRemote.New(client, logger), dateMath, taskOpts...)
	contacts := contactUC.New(logger, contactRemote.New(client, logger), tasks, cfg.Contacts.Locale,
		contactUC.WithOutbox(outbox),
		contactUC.WithMutationCounter(m),
	)
	outbox.RegisterApplier(remote.CollectionTasks, tasks)
	outbox.RegisterApplier(remote.CollectionContacts, contacts)

	// 7. Initial load, only possible with a stored token
	stores.sessions, stores.tasks, stores.contacts, stores.outbox = sessions, tasks, contacts, outbox
	if err := stores.Load(ctx); err != nil {
		logger.Warnf(ctx, "Initial load failed, /ready will retry: %v", err)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, sessions, cfg.RateLimit.PerMin),
		SessionHandler: sessionHTTP.New(logger, sessions),
		TaskHandler:    taskHTTP.New(logger, tasks),
		ContactHandler: contactHTTP.New(logger, contacts),
		BoardHandler:   boardHTTP.New(logger, tasks, contacts, dateMath.Location()),
		SyncHandler:    syncHTTP.New(logger, outbox),
		MetricsHandler: m.Handler(),
		ReadyCheck:     stores.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
