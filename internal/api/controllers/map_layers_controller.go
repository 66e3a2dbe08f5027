package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clausemap/internal/models/response_models"
	"clausemap/internal/services"
	"clausemap/pkg/utils"
)

type MapLayersController struct {
	mapLayerService services.MapLayerServiceInterface
	logger          *zap.Logger
}

func NewMapLayersController(mapLayerService services.MapLayerServiceInterface, logger *zap.Logger) *MapLayersController {
	return &MapLayersController{
		mapLayerService: mapLayerService,
		logger:          logger,
	}
}

// ListMapLayers godoc
// @Summary List map layers
// @Description Overlay images available under /static, sorted by name
// @Tags Map
// @Produce json
// @Success 200 {object} response_models.MapLayersResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/map-layers [get]
func (m *MapLayersController) ListMapLayers(c *gin.Context) {
	layers, err := m.mapLayerService.ListMapLayers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, m.logger, err)
		return
	}

	utils.RespondJSON(c, response_models.MapLayersResponse{Layers: layers})
}
