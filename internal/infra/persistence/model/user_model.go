// Package model contains the GORM-specific structs mapping domain entities to tables.
package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	FirstName     string `gorm:"type:text;not null"`
	LastName      string `gorm:"type:text;not null"`
	PhoneNumber   string `gorm:"type:text;uniqueIndex"`
	Email         string `gorm:"type:text;uniqueIndex"`
	Role          string `gorm:"type:text;not null"`
	CooperativeID *int64 `gorm:"index"`
	IsActive      bool   `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
