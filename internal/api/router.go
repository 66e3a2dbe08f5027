package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clausemap/internal/api/controllers"
	"clausemap/internal/config"
	"clausemap/internal/metrics"
	"clausemap/pkg/middleware"
)

func ProvideRouter(
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
	provincesController *controllers.ProvincesController,
	mapLayersController *controllers.MapLayersController,
	pageController *controllers.PageController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AccessLogMiddleware(logger))
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.CORSMiddleware())

	templatesLoaded := loadTemplates(r, cfg.TemplatesDir, logger)
	RegisterRoutes(r, cfg, m, provincesController, mapLayersController, pageController, templatesLoaded)

	return r
}

func loadTemplates(r *gin.Engine, dir string, logger *zap.Logger) bool {
	matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil || len(matches) == 0 {
		logger.Warn("no templates found, index page disabled", zap.String("dir", dir))
		return false
	}
	r.LoadHTMLFiles(matches...)
	return true
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	m *metrics.Metrics,
	provincesController *controllers.ProvincesController,
	mapLayersController *controllers.MapLayersController,
	pageController *controllers.PageController,
	withIndex bool) {

	if withIndex {
		r.GET("/", pageController.Index)
	}
	r.Static("/static", cfg.StaticDir)
	r.GET("/healthz", pageController.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	apiGroup := r.Group("/api")
	apiGroup.GET("/provinces", provincesController.GetAllProvinces)
	apiGroup.GET("/provinces/:province_id", provincesController.GetProvince)
	apiGroup.GET("/map-layers", mapLayersController.ListMapLayers)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
}
