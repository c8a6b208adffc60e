package model

import "time"

// CooperativeModel is the GORM-specific struct for the 'cooperatives' table.
type CooperativeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text;not null"`
	Location  string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CooperativeModel) TableName() string {
	return "cooperatives"
}
