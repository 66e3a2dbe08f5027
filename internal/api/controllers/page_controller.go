package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clausemap/internal/models/response_models"
	"clausemap/internal/services"
)

const indexTemplate = "index.html"

type PageController struct {
	provinceService services.ProvinceServiceInterface
	logger          *zap.Logger
}

func NewPageController(provinceService services.ProvinceServiceInterface, logger *zap.Logger) *PageController {
	return &PageController{
		provinceService: provinceService,
		logger:          logger,
	}
}

func (p *PageController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, gin.H{})
}

// Health reports 503 while the dataset cannot be loaded.
func (p *PageController) Health(c *gin.Context) {
	provinces, err := p.provinceService.GetAllProvinces(c.Request.Context())
	if err != nil {
		p.logger.Warn("health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, response_models.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, response_models.HealthResponse{Status: "ok", Provinces: provinces.Len()})
}
