package repository

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/errors"
)

// ErrCommodityNotFound is returned when no commodity matches the lookup.
var ErrCommodityNotFound = errors.New("commodity not found")

// CommodityRepository provides access to commodities.
type CommodityRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Commodity, error)
}
