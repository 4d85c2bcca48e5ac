package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/crewhub/internal/auth/http"
	companyHTTP "github.com/allisson/crewhub/internal/company/http"
	"github.com/allisson/crewhub/internal/config"
	employeeHTTP "github.com/allisson/crewhub/internal/employee/http"
	managerHTTP "github.com/allisson/crewhub/internal/manager/http"
	"github.com/allisson/crewhub/internal/metrics"
	orderHTTP "github.com/allisson/crewhub/internal/order/http"
	videoHTTP "github.com/allisson/crewhub/internal/video/http"
)

// RouterDeps holds everything the router needs to wire the API surface.
type RouterDeps struct {
	Config          *config.Config
	Logger          *slog.Logger
	DB              *sql.DB
	MetricsProvider *metrics.Provider

	AuthHandler          *authHTTP.AuthHandler
	PasswordResetHandler *authHTTP.PasswordResetHandler
	InvitationHandler    *authHTTP.InvitationHandler
	CompanyHandler       *companyHTTP.CompanyHandler
	ManagerHandler       *managerHTTP.ManagerHandler
	EmployeeHandler      *employeeHTTP.EmployeeHandler
	VideoHandler         *videoHTTP.VideoHandler
	OrderHandler         *orderHTTP.OrderHandler
}

// NewRouter assembles the Gin engine with all middleware and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(deps.Logger))

	if corsMiddleware := createCORSMiddleware(
		deps.Config.CORSEnabled,
		deps.Config.CORSAllowOrigins,
		deps.Logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			deps.MetricsProvider.MeterProvider(),
			deps.Config.MetricsNamespace,
		))
	}

	router.GET("/health", healthHandler())
	router.GET("/ready", readinessHandler(deps.DB))

	v1 := router.Group("/v1")

	// Unauthenticated credential endpoints are the abuse surface, they get
	// their own per-IP rate limit.
	authGroup := v1.Group("/auth")
	if deps.Config.RateLimitAuthEnabled {
		authGroup.Use(authHTTP.AuthRateLimitMiddleware(
			deps.Config.RateLimitAuthRequestsPerSec,
			deps.Config.RateLimitAuthBurst,
			deps.Logger,
		))
	}
	authGroup.POST("/verify", deps.AuthHandler.VerifyHandler)
	authGroup.PUT("/credential", deps.AuthHandler.ChangeCredentialHandler)
	authGroup.POST("/reset/request", deps.PasswordResetHandler.RequestHandler)
	authGroup.POST("/reset/validate", deps.PasswordResetHandler.ValidateHandler)
	authGroup.POST("/reset/consume", deps.PasswordResetHandler.ConsumeHandler)

	v1.POST("/invitations", deps.InvitationHandler.IssueHandler)
	v1.POST("/invitations/resolve", deps.InvitationHandler.ResolveHandler)
	v1.POST("/invitations/accept", deps.InvitationHandler.AcceptHandler)

	v1.POST("/companies", deps.CompanyHandler.CreateHandler)
	v1.GET("/companies", deps.CompanyHandler.ListHandler)
	v1.GET("/companies/:id", deps.CompanyHandler.GetHandler)
	v1.PUT("/companies/:id", deps.CompanyHandler.UpdateHandler)
	v1.DELETE("/companies/:id", deps.CompanyHandler.DeleteHandler)
	v1.GET("/companies/:id/managers", deps.ManagerHandler.ListHandler)
	v1.GET("/companies/:id/employees", deps.EmployeeHandler.ListHandler)
	v1.GET("/companies/:id/videos", deps.VideoHandler.ListHandler)
	v1.GET("/companies/:id/orders", deps.OrderHandler.ListHandler)

	v1.POST("/managers", deps.ManagerHandler.CreateHandler)
	v1.GET("/managers/:id", deps.ManagerHandler.GetHandler)
	v1.PUT("/managers/:id", deps.ManagerHandler.UpdateHandler)
	v1.DELETE("/managers/:id", deps.ManagerHandler.DeleteHandler)

	v1.POST("/employees", deps.EmployeeHandler.CreateHandler)
	v1.GET("/employees/:id", deps.EmployeeHandler.GetHandler)
	v1.PUT("/employees/:id", deps.EmployeeHandler.UpdateHandler)
	v1.DELETE("/employees/:id", deps.EmployeeHandler.ArchiveHandler)

	v1.POST("/videos", deps.VideoHandler.CreateHandler)
	v1.GET("/videos/:id", deps.VideoHandler.GetHandler)
	v1.PUT("/videos/:id", deps.VideoHandler.UpdateHandler)
	v1.DELETE("/videos/:id", deps.VideoHandler.DeleteHandler)

	v1.POST("/orders", deps.OrderHandler.CreateHandler)
	v1.GET("/orders/:id", deps.OrderHandler.GetHandler)
	v1.PATCH("/orders/:id/status", deps.OrderHandler.UpdateStatusHandler)

	return router
}

func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// readinessHandler reports ready only when the database answers a ping.
func readinessHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(pingCtx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
