package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clausemap/internal/services"
	"clausemap/pkg/utils"
)

type ProvincesController struct {
	provinceService services.ProvinceServiceInterface
	logger          *zap.Logger
}

func NewProvincesController(provinceService services.ProvinceServiceInterface, logger *zap.Logger) *ProvincesController {
	return &ProvincesController{
		provinceService: provinceService,
		logger:          logger,
	}
}

// GetAllProvinces godoc
// @Summary Get all provinces
// @Description Returns the whole dataset in the provinces.json shape
// @Tags Provinces
// @Produce json
// @Success 200 {object} db_models.ProvincesData
// @Failure 500 {object} utils.APIResponse
// @Router /api/provinces [get]
func (p *ProvincesController) GetAllProvinces(c *gin.Context) {
	provinces, err := p.provinceService.GetAllProvinces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondJSON(c, provinces)
}

// GetProvince godoc
// @Summary Get one province
// @Description Looks a province up by its key in the provinces mapping (not by its id)
// @Tags Provinces
// @Produce json
// @Param province_id path string true "Lookup key"
// @Success 200 {object} db_models.Province
// @Failure 404 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/provinces/{province_id} [get]
func (p *ProvincesController) GetProvince(c *gin.Context) {
	key := c.Param("province_id")

	province, err := p.provinceService.GetProvinceByKey(c.Request.Context(), key)
	if err != nil {
		utils.HandleServiceError(c, p.logger, err)
		return
	}

	utils.RespondJSON(c, province)
}
