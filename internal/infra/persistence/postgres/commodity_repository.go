package postgres

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commodityRepository implements the repository.CommodityRepository interface.
type commodityRepository struct {
	db *gorm.DB
}

// NewCommodityRepository is the constructor for commodityRepository.
func NewCommodityRepository(db *gorm.DB) repository.CommodityRepository {
	return &commodityRepository{
		db: db,
	}
}

// FindByID retrieves a commodity by its unique ID.
func (repo *commodityRepository) FindByID(ctx context.Context, id int64) (*entity.Commodity, error) {
	var commodityM model.CommodityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commodityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommodityNotFound
		}

		return nil, errors.Wrap(err, "failed to find commodity by ID")
	}

	return &entity.Commodity{
		ID:        commodityM.ID,
		Name:      commodityM.Name,
		Unit:      commodityM.Unit,
		CreatedAt: commodityM.CreatedAt,
		UpdatedAt: commodityM.UpdatedAt,
	}, nil
}
