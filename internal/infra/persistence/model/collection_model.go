package model

import "time"

// CollectionModel is the GORM-specific struct for the 'produce_collections' table.
type CollectionModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	FarmerID        int64   `gorm:"not null;index"`
	FieldOperatorID int64   `gorm:"not null;index"`
	CooperativeID   *int64  `gorm:"index"`
	CommodityID     int64   `gorm:"not null;index"`
	Quantity        float64 `gorm:"type:decimal(12,3);not null"`
	Status          string  `gorm:"type:text;not null;default:'IN_STOCK'"`
	Notes           string  `gorm:"type:text"`
	CollectedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "produce_collections"
}
