package province_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"clausemap/internal/metrics"
	"clausemap/internal/repositories"
	"clausemap/internal/services"
)

var Module = fx.Provide(
	NewProvinceService)

func NewProvinceService(repo repositories.ProvinceRepository, m *metrics.Metrics, logger *zap.Logger) services.ProvinceServiceInterface {
	return services.NewProvinceService(repo, m, logger)
}
