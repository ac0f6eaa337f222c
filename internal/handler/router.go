package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"food-preorder/internal/handler/api"
	"food-preorder/internal/handler/middleware"
	"food-preorder/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	slotHandler *api.SlotHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, menuHandler, slotHandler, orderHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	slotHandler *api.SlotHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: authHandler.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: authHandler.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		menu := apiGroup.Group("/menu")
		{
			addRoutes(menu, []route{
				{Method: http.MethodGet, Path: "", Handler: menuHandler.GetCatalog},
			})

			menuAdmin := menu.Group("")
			menuAdmin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(menuAdmin, []route{
				{Method: http.MethodPost, Path: "", Handler: menuHandler.CreateItem},
				{Method: http.MethodPatch, Path: "/:id", Handler: menuHandler.UpdateItem},
				{Method: http.MethodDelete, Path: "/:id", Handler: menuHandler.DeleteItem},
			})
		}

		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: slotHandler.List},
			})

			slotsKitchen := slots.Group("")
			slotsKitchen.Use(authMiddleware.RequireAuth(), authMiddleware.RequireKitchen())
			addRoutes(slotsKitchen, []route{
				{Method: http.MethodPost, Path: "", Handler: slotHandler.Create},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/auto-update", Handler: orderHandler.PreviewSweep, Mw: []gin.HandlerFunc{authMiddleware.RequireKitchen()}},
				{Method: http.MethodPost, Path: "/auto-update", Handler: orderHandler.ApplySweep, Mw: []gin.HandlerFunc{authMiddleware.RequireKitchen()}},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: orderHandler.UpdateStatus, Mw: []gin.HandlerFunc{authMiddleware.RequireKitchen()}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.Cancel},
			})
		}
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
