package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coupon-portal/internal/handler/api"
	"coupon-portal/internal/handler/middleware"
	"coupon-portal/internal/handler/web"
	"coupon-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	formHandler *api.FormHandler,
	pageHandler *web.PageHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) error {
	if err := web.LoadTemplates(engine); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, formHandler, pageHandler, sessionMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, formHandler *api.FormHandler, pageHandler *web.PageHandler, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// artwork is session independent
	engine.GET("/artwork/:bucket", pageHandler.Artwork)

	pages := engine.Group("")
	pages.Use(sessionMiddleware.LoadOrCreate())
	{
		addRoutes(pages, []route{
			{Method: http.MethodGet, Path: "/", Handler: pageHandler.Index},
			{Method: http.MethodPost, Path: "/coupon", Handler: pageHandler.Submit},
			{Method: http.MethodPost, Path: "/coupon/close", Handler: pageHandler.Close},
			{Method: http.MethodGet, Path: "/coupon/download", Handler: pageHandler.Download},
		})
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(sessionMiddleware.LoadOrCreate())
	{
		form := apiGroup.Group("/form")
		addRoutes(form, []route{
			{Method: http.MethodGet, Path: "", Handler: formHandler.GetState},
			{Method: http.MethodPatch, Path: "/fields", Handler: formHandler.EditField},
			{Method: http.MethodPost, Path: "/submit", Handler: formHandler.Submit},
			{Method: http.MethodPost, Path: "/reset", Handler: formHandler.Reset},
			{Method: http.MethodGet, Path: "/coupon.pdf", Handler: formHandler.DownloadPDF},
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
