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

// farmerRepository implements the repository.FarmerRepository interface.
type farmerRepository struct {
	db *gorm.DB
}

// NewFarmerRepository is the constructor for farmerRepository.
func NewFarmerRepository(db *gorm.DB) repository.FarmerRepository {
	return &farmerRepository{
		db: db,
	}
}

// FindByID retrieves a farmer by its unique ID.
func (repo *farmerRepository) FindByID(ctx context.Context, id int64) (*entity.Farmer, error) {
	var farmerM model.FarmerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&farmerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer by ID")
	}

	return toFarmerDomain(&farmerM), nil
}

// FindByPhone looks up a farmer by canonical phone first, raw phone second.
func (repo *farmerRepository) FindByPhone(ctx context.Context, canonical, raw string) (*entity.Farmer, error) {
	var farmerM model.FarmerModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", canonical).
		Or("phone_number = ?", raw).
		First(&farmerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFarmerNotFound
		}

		return nil, errors.Wrap(err, "failed to find farmer by phone")
	}

	return toFarmerDomain(&farmerM), nil
}

// Create persists a new farmer.
func (repo *farmerRepository) Create(ctx context.Context, farmer *entity.Farmer) error {
	farmerM := fromFarmerDomain(farmer)

	if err := repo.db.WithContext(ctx).Create(farmerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrFarmerAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid cooperative or registrar reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create farmer")
	}

	// Update the entity with generated values
	farmer.ID = farmerM.ID
	farmer.CreatedAt = farmerM.CreatedAt
	farmer.UpdatedAt = farmerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toFarmerDomain converts a GORM FarmerModel to a domain Farmer entity.
func toFarmerDomain(data *model.FarmerModel) *entity.Farmer {
	if data == nil {
		return nil
	}

	return &entity.Farmer{
		ID:                 data.ID,
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		Phone:              data.PhoneNumber,
		CooperativeID:      data.CooperativeID,
		RegisteredByUserID: data.RegisteredByUserID,
		RegistrationMethod: data.RegistrationMethod,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromFarmerDomain converts a domain Farmer entity to a GORM FarmerModel.
func fromFarmerDomain(data *entity.Farmer) *model.FarmerModel {
	if data == nil {
		return nil
	}

	return &model.FarmerModel{
		ID:                 data.ID,
		FirstName:          data.FirstName,
		LastName:           data.LastName,
		PhoneNumber:        data.Phone,
		CooperativeID:      data.CooperativeID,
		RegisteredByUserID: data.RegisteredByUserID,
		RegistrationMethod: data.RegistrationMethod,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
