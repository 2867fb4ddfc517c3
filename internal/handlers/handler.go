package handlers

import (
	"thermal_sentinel/internal/logger"
	"thermal_sentinel/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	alertThreshold float64
}

// NewHandler constructs a new HTTP handler with dependencies. alertThreshold
// is drawn on the history chart.
func NewHandler(services *service.Service, log *logger.Logger, alertThreshold float64) *Handler {
	return &Handler{services: services, log: log, alertThreshold: alertThreshold}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// telemetry + notification stream on the same port; ?token= carries the JWT
	router.GET("/ws", h.operatorMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		api.GET("/live", h.getLive)
		h.registerNotificationRoutes(api)
		h.registerChartRoutes(api)
		h.registerViewRoutes(api)
		api.POST("/analysis", h.analyze)
		h.registerSettingsRoutes(api)
		api.GET("/files", h.listFiles)
	}
}

func (h *Handler) registerNotificationRoutes(api *gin.RouterGroup) {
	n := api.Group("/notifications")
	{
		n.GET("", h.getNotifications)
		n.GET("/state", h.getNotificationState)
	}
}

func (h *Handler) registerChartRoutes(api *gin.RouterGroup) {
	api.GET("/charts/history", h.historyChart)

	ds := api.Group("/datasets/:dataset")
	{
		ds.GET("/evolution", h.getEvolution)
		ds.GET("/evolution/chart.png", h.evolutionChart)
	}
}

func (h *Handler) registerViewRoutes(api *gin.RouterGroup) {
	view := api.Group("/view")
	{
		view.GET("", h.getView)
		// Body example: {"dataset":"capture_01.npz"} or {"alert_id":"a-17"}
		view.POST("/dataset", h.selectDataset)
		view.POST("/frame", h.setFrame)
		view.POST("/mode", h.setViewMode)
		view.GET("/raster.png", h.getRaster)
		view.GET("/mesh", h.getMesh)
		view.POST("/pick", h.pick)
	}
}

func (h *Handler) registerSettingsRoutes(api *gin.RouterGroup) {
	s := api.Group("/settings")
	{
		s.GET("", h.getSettings)
		s.POST("", h.updateSettings)
		s.PUT("/credential", h.setCredential)
	}
}
