package postgres

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cooperativeRepository implements the repository.CooperativeRepository interface.
type cooperativeRepository struct {
	db *gorm.DB
}

// NewCooperativeRepository is the constructor for cooperativeRepository.
func NewCooperativeRepository(db *gorm.DB) repository.CooperativeRepository {
	return &cooperativeRepository{
		db: db,
	}
}

// FindByID retrieves a cooperative by its unique ID.
func (repo *cooperativeRepository) FindByID(ctx context.Context, id int64) (*entity.Cooperative, error) {
	var cooperativeM model.CooperativeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cooperativeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCooperativeNotFound
		}

		return nil, errors.Wrap(err, "failed to find cooperative by ID")
	}

	return &entity.Cooperative{
		ID:        cooperativeM.ID,
		Name:      cooperativeM.Name,
		Location:  cooperativeM.Location,
		CreatedAt: cooperativeM.CreatedAt,
		UpdatedAt: cooperativeM.UpdatedAt,
	}, nil
}
