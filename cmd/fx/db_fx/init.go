package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"clausemap/internal/config"
	"clausemap/internal/infra"
	"clausemap/internal/repositories"
)

var Module = fx.Provide(
	provideProvinceRepository)

// provideProvinceRepository picks the dataset source named by
// PROVINCE_SOURCE. The postgres connection is closed when the app stops.
func provideProvinceRepository(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repositories.ProvinceRepository, error) {
	if cfg.ProvinceSource != config.SourcePostgres {
		logger.Info("serving provinces from file", zap.String("path", cfg.ProvincesFile))
		return repositories.NewFileProvinceRepository(cfg.ProvincesFile), nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	logger.Info("serving provinces from postgres")
	return repositories.NewPostgresProvinceRepository(db), nil
}
