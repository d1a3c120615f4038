package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/textter73/control-estudiantina/internal/config"
	"github.com/textter73/control-estudiantina/internal/handler"
	"github.com/textter73/control-estudiantina/internal/middleware"
	"github.com/textter73/control-estudiantina/internal/notification"
	"github.com/textter73/control-estudiantina/internal/repository"
	"github.com/textter73/control-estudiantina/internal/router"
	"github.com/textter73/control-estudiantina/internal/scheduler"
	"github.com/textter73/control-estudiantina/internal/service"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"control-estudiantina",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	attendanceRepo := repository.NewAttendanceRepo(a.db)
	transportRepo := repository.NewTransportRepo(a.db)
	ticketRepo := repository.NewTicketRepo(a.db)
	financeRepo := repository.NewFinanceRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	inventoryRepo := repository.NewInventoryRepo(a.db)
	documentRepo := repository.NewDocumentRepo(a.db)
	evaluationRepo := repository.NewEvaluationRepo(a.db)
	songRepo := repository.NewSongRepo(a.db)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AlertChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	userService := service.NewUserService(userRepo, a.log)
	eventService := service.NewEventService(eventRepo, userRepo, a.log)
	attendanceService := service.NewAttendanceService(attendanceRepo, userRepo, a.log)
	transportService := service.NewTransportService(transportRepo, eventRepo, userRepo, n, a.log)
	ticketService := service.NewTicketService(ticketRepo, a.log)
	financeService := service.NewFinanceService(financeRepo, userRepo, a.log)
	paymentService := service.NewPaymentService(paymentRepo, userRepo, n, a.log)
	inventoryService := service.NewInventoryService(inventoryRepo, userRepo, n, a.log)
	documentService := service.NewDocumentService(documentRepo, userRepo, a.log)
	evaluationService := service.NewEvaluationService(evaluationRepo, userRepo, a.log)
	songService := service.NewSongService(songRepo, a.log)

	a.scheduler = scheduler.New(
		inventoryService,
		a.cfg.Inventory.ScanInterval,
		a.log,
	)

	h := handler.NewHandler(
		userService,
		eventService,
		attendanceService,
		transportService,
		ticketService,
		financeService,
		paymentService,
		inventoryService,
		documentService,
		evaluationService,
		songService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Identify(userRepo),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
