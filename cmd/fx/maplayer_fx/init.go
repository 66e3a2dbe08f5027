package maplayer_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"clausemap/internal/config"
	"clausemap/internal/metrics"
	"clausemap/internal/repositories"
	"clausemap/internal/services"
)

var Module = fx.Provide(
	provideMapLayerRepo, provideMapLayerService)

func provideMapLayerRepo(cfg *config.Config) repositories.MapLayerRepositoryInterface {
	return repositories.NewMapLayerRepository(cfg.StaticDir)
}

func provideMapLayerService(repo repositories.MapLayerRepositoryInterface, m *metrics.Metrics, logger *zap.Logger) services.MapLayerServiceInterface {
	return services.NewMapLayerService(repo, m, logger)
}
