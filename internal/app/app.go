// Package app configures and runs application.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/storefront/config"
	"github.com/device-management-toolkit/storefront/internal/cache"
	"github.com/device-management-toolkit/storefront/internal/cart"
	"github.com/device-management-toolkit/storefront/internal/controller/httpapi"
	"github.com/device-management-toolkit/storefront/internal/jsonrpc"
	"github.com/device-management-toolkit/storefront/internal/rpc"
	"github.com/device-management-toolkit/storefront/internal/session"
	"github.com/device-management-toolkit/storefront/internal/storage"
	"github.com/device-management-toolkit/storefront/internal/usecase"
	"github.com/device-management-toolkit/storefront/pkg/httpserver"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: " + cfg.Version)
	// route standard and Gin logs through our JSON logger
	logger.SetupStdLog(log)
	logger.SetupGin(log)

	stores, err := storage.Open(&cfg.Storage, log)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - storage.Open: %w", err))
	}

	defer func() {
		if err := stores.Close(); err != nil {
			log.Error(fmt.Errorf("app - Run - stores.Close: %w", err))
		}
	}()

	usecases, err := NewUseCases(context.Background(), cfg, stores, log)
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - NewUseCases: %w", err))
	}

	handler := setupHTTPHandler(cfg, log, usecases)

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS.Enabled, cfg.TLS.CertFile, cfg.TLS.KeyFile),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}

// NewUseCases builds the session, cart and ERP client over stores and
// resumes a persisted session when there is one.
func NewUseCases(ctx context.Context, cfg *config.Config, stores *storage.Stores, log logger.Interface) (*usecase.Usecases, error) {
	transport := jsonrpc.NewClient(
		jsonrpc.WithTimeout(cfg.ERP.Timeout),
		jsonrpc.WithLogger(log),
	)

	sess := session.New(transport, stores.Session, log)

	restored, err := sess.RestoreSession(ctx)
	if err != nil {
		log.Warn("app - session not restored: %v", err)
	} else if restored {
		info, _ := sess.SessionInfo()
		log.Info("app - restored session for user %d on %s", info.UserID, info.ServerAddress)
	}

	shoppingCart, err := cart.New(stores.Cart, log)
	if err != nil {
		return nil, fmt.Errorf("cart.New: %w", err)
	}

	client := rpc.New(sess, transport, log, rpc.WithLanguage(cfg.ERP.Language))

	return usecase.NewUseCases(sess, client, shoppingCart, cache.NewFromConfig(cfg), cfg, log), nil
}

func setupHTTPHandler(cfg *config.Config, log logger.Interface, usecases *usecase.Usecases) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()

	defaultConfig := cors.DefaultConfig()
	defaultConfig.AllowOrigins = cfg.AllowedOrigins
	defaultConfig.AllowHeaders = cfg.AllowedHeaders
	defaultConfig.ExposeHeaders = []string{jsonrpc.HeaderCorrelationID}

	handler.Use(cors.New(defaultConfig))
	httpapi.NewRouter(handler, log, usecases, cfg)

	// Optionally enable pprof endpoints (e.g., for staging) via env ENABLE_PPROF=true
	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}
