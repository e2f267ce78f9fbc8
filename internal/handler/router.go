package handler

import (
	"net/http"

	"little-lemon/internal/handler/api"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, menuHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managerOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireManager()}

	users := engine.Group("/users")
	{
		addRoutes(users, []route{
			{Method: http.MethodPost, Path: "", Handler: authHandler.Register},
			{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
		})
	}
	engine.POST("/token", authHandler.Login)

	menu := engine.Group("/menu")
	{
		addRoutes(menu, []route{
			{Method: http.MethodGet, Path: "", Handler: menuHandler.List},
			{Method: http.MethodPost, Path: "", Handler: menuHandler.Create, Mw: managerOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: menuHandler.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: menuHandler.Update, Mw: managerOnly},
			{Method: http.MethodPatch, Path: "/:id", Handler: menuHandler.Update, Mw: managerOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: menuHandler.Delete, Mw: managerOnly},
		})
	}

	book := engine.Group("/book")
	book.Use(authMiddleware.RequireAuth())
	{
		addRoutes(book, []route{
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get, Mw: []gin.HandlerFunc{authMiddleware.RequireManager()}},
			{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete, Mw: []gin.HandlerFunc{authMiddleware.RequireManager()}},
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
