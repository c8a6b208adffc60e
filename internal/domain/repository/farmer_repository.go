package repository

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/errors"
)

var (
	// ErrFarmerNotFound is returned when no farmer matches the lookup.
	ErrFarmerNotFound = errors.New("farmer not found")

	// ErrFarmerAlreadyExists is returned when a phone number is already registered.
	ErrFarmerAlreadyExists = errors.New("farmer already exists")
)

// FarmerRepository provides access to farmers.
type FarmerRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Farmer, error)

	// FindByPhone looks up a farmer by the canonical phone form first and the
	// raw inbound form second.
	FindByPhone(ctx context.Context, canonical, raw string) (*entity.Farmer, error)

	// Create persists a new farmer and fills in the generated ID and timestamps.
	Create(ctx context.Context, farmer *entity.Farmer) error
}
