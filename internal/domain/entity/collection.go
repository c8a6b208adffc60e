package entity

import "time"

// CollectionStatus tracks a collection through the supply chain.
type CollectionStatus string

const (
	CollectionStatusInStock   CollectionStatus = "IN_STOCK"
	CollectionStatusSold      CollectionStatus = "SOLD"
	CollectionStatusDelivered CollectionStatus = "DELIVERED"
)

// Collection represents a quantity of produce collected from a farmer by a
// field operator. The cooperative is always inherited from the farmer, never
// taken from the message, so a collection cannot be spoofed into another
// cooperative.
type Collection struct {
	ID              int64
	FarmerID        int64
	FieldOperatorID int64
	CooperativeID   *int64
	CommodityID     int64
	Quantity        float64
	Status          CollectionStatus
	Notes           string
	CollectedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CollectionDetail is a read model joining a collection with the farmer and
// commodity names a status summary needs. It is never written back.
type CollectionDetail struct {
	ID            int64
	FarmerName    string
	CommodityName string
	Quantity      float64
	Status        CollectionStatus
	CollectedAt   time.Time
}
