package repository

import (
	"context"

	"farmgrid/internal/domain/entity"
	"farmgrid/internal/errors"
)

// ErrCollectionNotFound is returned when no collection matches the lookup.
var ErrCollectionNotFound = errors.New("collection not found")

// CollectionRepository provides access to produce collections.
type CollectionRepository interface {
	// Create persists a new collection and fills in the generated ID and timestamps.
	Create(ctx context.Context, collection *entity.Collection) error

	// FindDetailByID loads a collection joined with the farmer and commodity
	// names needed for status summaries.
	FindDetailByID(ctx context.Context, id int64) (*entity.CollectionDetail, error)
}
