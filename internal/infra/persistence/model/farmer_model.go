package model

import "time"

// FarmerModel is the GORM-specific struct for the 'farmers' table.
type FarmerModel struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	FirstName          string `gorm:"type:text;not null"`
	LastName           string `gorm:"type:text;not null"`
	PhoneNumber        string `gorm:"type:text;uniqueIndex"`
	CooperativeID      *int64 `gorm:"index"`
	RegisteredByUserID *int64 `gorm:"index"`
	RegistrationMethod string `gorm:"type:text;not null;default:'WEB'"`
	IsActive           bool   `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerModel) TableName() string {
	return "farmers"
}
