package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clausemap/internal/metrics"
	"clausemap/internal/repositories"
	"clausemap/pkg/utils"
)

type MapLayerServiceInterface interface {
	ListMapLayers(ctx context.Context) ([]string, error)
}

type MapLayerService struct {
	mapLayerRepo repositories.MapLayerRepositoryInterface
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewMapLayerService(
	mapLayerRepo repositories.MapLayerRepositoryInterface,
	m *metrics.Metrics,
	logger *zap.Logger) MapLayerServiceInterface {
	return &MapLayerService{
		mapLayerRepo: mapLayerRepo,
		metrics:      m,
		logger:       logger,
	}
}

func (s *MapLayerService) ListMapLayers(ctx context.Context) ([]string, error) {
	s.metrics.MapLayerListingsTotal.Inc()
	layers, err := s.mapLayerRepo.ListMapLayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrMapLayersUnavailable, err)
	}
	s.logger.Debug("map layers listed", zap.Int("count", len(layers)))
	return layers, nil
}
