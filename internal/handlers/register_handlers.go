package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/cashflow_app/cmd/docs"
	portssvc "github.com/SscSPs/cashflow_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_app/internal/middleware"
	"github.com/SscSPs/cashflow_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if err := RegisterValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("failed to configure login rate limit: %w", err)
	}

	v1 := r.Group("/api/v1")

	// Public authentication routes
	registerAuthRoutes(v1, services.User, services.TokenService, middleware.RateLimit(loginLimiter))

	// Everything else requires a token and a resolved capability
	protected := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret), middleware.LoadCapability(services.AccessGrant))
	RegisterAPIRoutes(protected, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// RegisterAPIRoutes delegates route registration to the entity handlers.
// rg must already carry AuthMiddleware and LoadCapability.
func RegisterAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerTransactionRoutes(rg, services.Ledger, services.Transaction)
	registerSafeRoutes(rg, services.Safe, services.Ledger)
	registerLookupRoutes(rg, services.Category, services.Contact)
	registerConfigRoutes(rg, services.Category, services.AccessGrant)
	registerUserRoutes(rg, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
