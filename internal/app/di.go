// Package app provides the dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authUseCase "github.com/allisson/crewhub/internal/auth/usecase"
	companyUseCase "github.com/allisson/crewhub/internal/company/usecase"
	"github.com/allisson/crewhub/internal/config"
	"github.com/allisson/crewhub/internal/database"
	employeeUseCase "github.com/allisson/crewhub/internal/employee/usecase"
	"github.com/allisson/crewhub/internal/http"
	managerUseCase "github.com/allisson/crewhub/internal/manager/usecase"
	"github.com/allisson/crewhub/internal/metrics"
	"github.com/allisson/crewhub/internal/notification"
	orderUseCase "github.com/allisson/crewhub/internal/order/usecase"
	videoUseCase "github.com/allisson/crewhub/internal/video/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	sender          notification.Sender

	// Auth stack
	auth authComponents

	// Feature use cases
	companyUC  companyUseCase.CompanyUseCase
	managerUC  managerUseCase.ManagerUseCase
	employeeUC employeeUseCase.EmployeeUseCase
	videoUC    videoUseCase.VideoUseCase
	orderUC    orderUseCase.OrderUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	txManagerInit       sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	senderInit          sync.Once
	authInit            sync.Once
	companyUCInit       sync.Once
	managerUCInit       sync.Once
	employeeUCInit      sync.Once
	videoUCInit         sync.Once
	orderUCInit         sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := database.Connect(database.Config{
			Driver:             c.config.DBDriver,
			ConnectionString:   c.config.DBConnectionString,
			MaxOpenConnections: c.config.DBMaxOpenConnections,
			MaxIdleConnections: c.config.DBMaxIdleConnections,
			ConnMaxLifetime:    c.config.DBConnMaxLifetime,
		})
		if err != nil {
			c.initErrors["db"] = fmt.Errorf("failed to connect to database: %w", err)
			return
		}
		c.db = db
	})
	if err, exists := c.initErrors["db"]; exists {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if err, exists := c.initErrors["txManager"]; exists {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus metrics provider.
// Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = fmt.Errorf("failed to create metrics provider: %w", err)
			return
		}
		c.metricsProvider = provider
	})
	if err, exists := c.initErrors["metricsProvider"]; exists {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Falls back to a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = fmt.Errorf("failed to create business metrics: %w", err)
			return
		}
		c.businessMetrics = businessMetrics
	})
	if err, exists := c.initErrors["businessMetrics"]; exists {
		return nil, err
	}
	return c.businessMetrics, nil
}

// Sender returns the notification sender used for token delivery.
func (c *Container) Sender() notification.Sender {
	c.senderInit.Do(func() {
		c.sender = notification.NewSlogSender(c.Logger())
	})
	return c.sender
}

// HTTPServer returns the API HTTP server instance.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if err, exists := c.initErrors["httpServer"]; exists {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance.
// Returns nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if err, exists := c.initErrors["metricsServer"]; exists {
		return nil, err
	}
	return c.metricsServer, nil
}

func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}

	authHandlers, err := c.AuthHandlers()
	if err != nil {
		return nil, err
	}

	companyHandler, err := c.CompanyHandler()
	if err != nil {
		return nil, err
	}
	managerHandler, err := c.ManagerHandler()
	if err != nil {
		return nil, err
	}
	employeeHandler, err := c.EmployeeHandler()
	if err != nil {
		return nil, err
	}
	videoHandler, err := c.VideoHandler()
	if err != nil {
		return nil, err
	}
	orderHandler, err := c.OrderHandler()
	if err != nil {
		return nil, err
	}

	router := http.NewRouter(http.RouterDeps{
		Config:          c.config,
		Logger:          logger,
		DB:              db,
		MetricsProvider: provider,

		AuthHandler:          authHandlers.auth,
		PasswordResetHandler: authHandlers.passwordReset,
		InvitationHandler:    authHandlers.invitation,
		CompanyHandler:       companyHandler,
		ManagerHandler:       managerHandler,
		EmployeeHandler:      employeeHandler,
		VideoHandler:         videoHandler,
		OrderHandler:         orderHandler,
	})

	return http.NewServer(c.config.ServerHost, c.config.ServerPort, router, logger), nil
}

// Shutdown performs cleanup of all initialized resources.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// unsupportedDriverError is shared by all repository selectors.
func unsupportedDriverError(driver string) error {
	return fmt.Errorf("unsupported database driver: %s", driver)
}

// interface checks keeping the feature use cases pluggable as gateways
var (
	_ authUseCase.CompanyGateway      = (companyUseCase.CompanyUseCase)(nil)
	_ authUseCase.EmployeeProvisioner = (employeeUseCase.EmployeeUseCase)(nil)
)
