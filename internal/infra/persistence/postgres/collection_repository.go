package postgres

import (
	"context"

	"farmgrid/internal/domain/entity"
	domainerrors "farmgrid/internal/domain/errors"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionRepository implements the repository.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

// Create persists a new produce collection.
func (repo *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Create(collectionM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid farmer, operator or commodity reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required collection information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
	}

	// Update the entity with generated values
	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt
	collection.UpdatedAt = collectionM.UpdatedAt

	return nil
}

// FindDetailByID loads a collection joined with the farmer and commodity names.
func (repo *collectionRepository) FindDetailByID(ctx context.Context, id int64) (*entity.CollectionDetail, error) {
	var result entity.CollectionDetail

	err := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Select(
			"produce_collections.id",
			"farmers.first_name || ' ' || farmers.last_name AS farmer_name",
			"commodities.name AS commodity_name",
			"produce_collections.quantity",
			"produce_collections.status",
			"produce_collections.collected_at",
		).
		Joins("JOIN farmers ON farmers.id = produce_collections.farmer_id").
		Joins("JOIN commodities ON commodities.id = produce_collections.commodity_id").
		Where("produce_collections.id = ?", id).
		Take(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection detail by ID")
	}

	return &result, nil
}

// --- Mapper Functions ---

// fromCollectionDomain converts a domain Collection entity to a GORM CollectionModel.
func fromCollectionDomain(data *entity.Collection) *model.CollectionModel {
	if data == nil {
		return nil
	}

	return &model.CollectionModel{
		ID:              data.ID,
		FarmerID:        data.FarmerID,
		FieldOperatorID: data.FieldOperatorID,
		CooperativeID:   data.CooperativeID,
		CommodityID:     data.CommodityID,
		Quantity:        data.Quantity,
		Status:          string(data.Status),
		Notes:           data.Notes,
		CollectedAt:     data.CollectedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
