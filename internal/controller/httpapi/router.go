// Package httpapi implements routing paths. Each services in own file.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/device-management-toolkit/storefront/config"
	v1 "github.com/device-management-toolkit/storefront/internal/controller/httpapi/v1"
	"github.com/device-management-toolkit/storefront/internal/jsonrpc"
	"github.com/device-management-toolkit/storefront/internal/usecase"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

// NewRouter -.
func NewRouter(handler *gin.Engine, l logger.Interface, t *usecase.Usecases, cfg *config.Config) {
	// Options
	handler.Use(logger.GinRequestLogger(l, jsonrpc.HeaderCorrelationID, "/healthz", "/metrics"))
	handler.Use(gin.Recovery())
	handler.Use(CorrelationID())

	// K8s probe
	handler.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Prometheus metrics
	handler.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Routers
	h := handler.Group("/api/v1")
	{
		v1.NewSessionRoutes(h, t.Session, t.Cart, cfg.ERP, l)
		v1.NewCatalogRoutes(h, t.Catalog, l)
		v1.NewCartRoutes(h, t.Cart, t.Catalog, t.Checkout, l)
		v1.NewOrderRoutes(h, t.Orders, l)
	}
}
