package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clausemap/internal/metrics"
	"clausemap/internal/models/db_models"
	"clausemap/internal/repositories"
	"clausemap/pkg/utils"
)

type ProvinceServiceInterface interface {
	GetAllProvinces(ctx context.Context) (*db_models.ProvincesData, error)
	GetProvinceByKey(ctx context.Context, key string) (*db_models.Province, error)
}

type ProvinceService struct {
	provinceRepository repositories.ProvinceRepository
	metrics            *metrics.Metrics
	logger             *zap.Logger
}

func NewProvinceService(
	provinceRepository repositories.ProvinceRepository,
	m *metrics.Metrics,
	logger *zap.Logger) ProvinceServiceInterface {
	return &ProvinceService{
		provinceRepository: provinceRepository,
		metrics:            m,
		logger:             logger,
	}
}

func (p *ProvinceService) load(ctx context.Context) (*db_models.ProvincesData, error) {
	p.metrics.ProvinceLoadsTotal.Inc()
	data, err := p.provinceRepository.LoadAll(ctx)
	if err != nil {
		p.metrics.ProvinceLoadErrors.Inc()
		return nil, fmt.Errorf("%w: %w", utils.ErrProvinceDataUnavailable, err)
	}
	p.logger.Debug("provinces loaded", zap.Int("count", data.Len()))
	return data, nil
}

func (p *ProvinceService) GetAllProvinces(ctx context.Context) (*db_models.ProvincesData, error) {
	return p.load(ctx)
}

// GetProvinceByKey matches key against the dataset's lookup keys only,
// never against Province.ID.
func (p *ProvinceService) GetProvinceByKey(ctx context.Context, key string) (*db_models.Province, error) {
	data, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	province, ok := data.Lookup(key)
	if !ok {
		p.metrics.ProvinceLookupsTotal.WithLabelValues("miss").Inc()
		return nil, utils.ErrProvinceNotFound
	}

	p.metrics.ProvinceLookupsTotal.WithLabelValues("hit").Inc()
	return &province, nil
}
