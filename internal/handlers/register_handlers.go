package handlers

import (
	"fmt"

	"github.com/SscSPs/notion_quote_viewer/cmd/docs"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/middleware"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/config"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/pdf"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Dependencies are the collaborators the routes need besides the services.
type Dependencies struct {
	PDF pdf.Renderer
	// MaintenanceLimiter throttles the maintenance and revalidate endpoints. Nil disables throttling.
	MaintenanceLimiter *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Dependencies,
) error {
	tmpl, err := LoadTemplates()
	if err != nil {
		return fmt.Errorf("failed to load page templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// Add health check route
	r.GET("/health", getHealth)

	setupAPIRoutes(r, cfg, services, deps)

	renderer := deps.PDF
	if renderer == nil {
		renderer = pdf.DisabledRenderer{}
	}
	registerPageRoutes(r, services.Invoice, tmpl, renderer)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group and delegates to specific route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Dependencies,
) {
	api := r.Group("/api", cors.New(corsConfig(cfg)))

	var throttle []gin.HandlerFunc
	if deps.MaintenanceLimiter != nil {
		throttle = append(throttle, middleware.RateLimit(deps.MaintenanceLimiter))
	}

	registerQuoteRoutes(api, services.Invoice, services.Quote)
	registerRevalidateRoutes(api, services.Invoice, cfg.RevalidateSecret, throttle...)
	registerMaintenanceRoutes(api, services.Maintenance, throttle...)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	c.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	c.ExposeHeaders = []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	return c
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
