package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stand-ledger/internal/handler/api"
	"stand-ledger/internal/handler/middleware"
	"stand-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Catalog *api.CatalogHandler
	Sale    *api.SaleHandler
	Order   *api.OrderHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, gatherer prometheus.Gatherer, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, gatherer, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.Use(authMiddleware.OptionalStaff())
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/items", Handler: h.Catalog.ListItems},
			{Method: http.MethodGet, Path: "/sales", Handler: h.Sale.ListSales},
			{Method: http.MethodPost, Path: "/sales", Handler: h.Sale.RecordSales},
			{Method: http.MethodGet, Path: "/summary", Handler: h.Sale.GetSummary},
			{Method: http.MethodPost, Path: "/customer-order", Handler: h.Order.SubmitOrder},
		})

		staffOnly := []gin.HandlerFunc{authMiddleware.RequireStaff()}
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/pending-orders", Handler: h.Order.ListPending, Mw: staffOnly},
			{Method: http.MethodPost, Path: "/approve-order/:id", Handler: h.Order.Approve, Mw: staffOnly},
			{Method: http.MethodPost, Path: "/reject-order/:id", Handler: h.Order.Reject, Mw: staffOnly},
			{Method: http.MethodPost, Path: "/clear-sales", Handler: h.Sale.ClearSales, Mw: staffOnly},
			{Method: http.MethodGet, Path: "/order-decisions", Handler: h.Order.ListDecisions, Mw: staffOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
