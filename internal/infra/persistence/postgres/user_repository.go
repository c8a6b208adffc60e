// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByPhone looks up a user by canonical phone first, raw phone second.
// Rows written before phone normalization existed still carry the raw form.
func (repo *userRepository) FindByPhone(ctx context.Context, canonical, raw string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", canonical).
		Or("phone_number = ?", raw).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return toUserDomain(&userM), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		FirstName:     data.FirstName,
		LastName:      data.LastName,
		Phone:         data.PhoneNumber,
		Email:         data.Email,
		Role:          entity.Role(data.Role),
		CooperativeID: data.CooperativeID,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
