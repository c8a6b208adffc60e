package repository

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/errors"
)

// ErrCooperativeNotFound is returned when no cooperative matches the lookup.
var ErrCooperativeNotFound = errors.New("cooperative not found")

// CooperativeRepository provides access to cooperatives.
type CooperativeRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Cooperative, error)
}
