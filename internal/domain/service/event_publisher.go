package service

import (
	"context"
	"time"
)

// CollectionEvent is published after a collection is recorded so downstream
// systems (inventory, payments) can react without polling the database.
type CollectionEvent struct {
	CollectionID    int64     `json:"collection_id"`
	FarmerID        int64     `json:"farmer_id"`
	CommodityID     int64     `json:"commodity_id"`
	FieldOperatorID int64     `json:"field_operator_id"`
	CooperativeID   *int64    `json:"cooperative_id,omitempty"`
	Quantity        float64   `json:"quantity"`
	RequestID       string    `json:"request_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	PublishCollectionEvent(ctx context.Context, event *CollectionEvent) error

	// Close releases broker resources.
	Close() error
}
