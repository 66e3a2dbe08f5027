package repositories

import (
	"context"

	"gorm.io/gorm"

	"clausemap/internal/models/db_models"
)

// ProvinceRepository yields a freshly loaded dataset on every call.
type ProvinceRepository interface {
	LoadAll(ctx context.Context) (*db_models.ProvincesData, error)
}

type fileProvinceRepository struct {
	path string
}

func NewFileProvinceRepository(path string) ProvinceRepository {
	return &fileProvinceRepository{path: path}
}

func (f *fileProvinceRepository) LoadAll(ctx context.Context) (*db_models.ProvincesData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadProvinces(f.path)
}

type postgresProvinceRepository struct {
	db *gorm.DB
}

func NewPostgresProvinceRepository(db *gorm.DB) ProvinceRepository {
	return &postgresProvinceRepository{db: db}
}

func (p *postgresProvinceRepository) LoadAll(ctx context.Context) (*db_models.ProvincesData, error) {
	var rows []db_models.ProvinceRow
	if err := p.db.WithContext(ctx).Order("lookup_key").Find(&rows).Error; err != nil {
		return nil, err
	}
	return db_models.ProvinceRowsToData(rows), nil
}
