package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"theark/internal/config"
	"theark/internal/database"
	"theark/internal/events"
	"theark/internal/ledger"
	"theark/internal/logger"
	"theark/internal/server"
	"theark/internal/services"
	"theark/internal/session"
)

// @title           theark API
// @version         1.0
// @description     Single-account finance tracker: cookie session login and a monthly income/expense ledger.

// @host      localhost:8080
// @BasePath  /

const shutdownTimeout = 30 * time.Second

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(ctx context.Context) error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	var (
		store    ledger.Store = ledger.NewMemoryStore()
		denylist session.Denylist
		audit    = services.NewAuditService(nil)
	)
	if appConfig.RevokeOnLogout {
		denylist = session.NewMemoryDenylist(nil)
	}

	if dbConfig.Persistent() {
		dbManager, err := database.NewManager(dbConfig)
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer func() {
			if err := dbManager.Close(); err != nil {
				log.Warnf("database close error: %v", err)
			}
		}()

		if err := dbManager.Migrate(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}

		db := dbManager.DB()
		store = database.NewEntryStore(db)
		audit = services.NewAuditService(db)
		if appConfig.RevokeOnLogout {
			denylist = database.NewRevokedTokenStore(db, nil)
		}
		log.Infof("Using %s database", dbConfig.Driver)
	} else {
		log.Info("Using in-memory ledger; entries are lost on restart")
	}

	var opts []session.Option
	if denylist != nil {
		opts = append(opts, session.WithDenylist(denylist))
	}
	authority, err := session.NewAuthority(appConfig.SessionSecret, session.Credentials{
		Login:        appConfig.Login,
		Password:     appConfig.Password,
		PasswordHash: appConfig.PasswordHash,
	}, opts...)
	if err != nil {
		return fmt.Errorf("failed to create session authority: %w", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if appConfig.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPRoutingKey)
		if err != nil {
			return fmt.Errorf("failed to connect to AMQP broker: %w", err)
		}
		publisher = amqpPublisher
		log.Infof("Publishing ledger events to exchange %q", appConfig.AMQPExchange)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnf("publisher close error: %v", err)
		}
	}()

	l := ledger.New(store)
	if appConfig.DemoData {
		if err := l.SeedDemo(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Info("Seeded demo entries")
	}

	router := server.NewRouter(server.Deps{
		AuthService:   services.NewAuthService(authority, audit),
		LedgerService: services.NewLedgerService(l, publisher, audit),
		SecureCookie:  appConfig.SecureCookie,
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting theark server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped gracefully")
	return nil
}
