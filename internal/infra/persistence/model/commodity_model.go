package model

import "time"

// CommodityModel is the GORM-specific struct for the 'commodities' table.
type CommodityModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text;not null"`
	Unit      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommodityModel) TableName() string {
	return "commodities"
}
