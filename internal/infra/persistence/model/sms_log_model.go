package model

import "time"

// SmsLogModel is the GORM-specific struct for the 'sms_logs' table.
// Rows are append-only; nothing in the application updates or deletes them.
type SmsLogModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	PhoneNumber string `gorm:"type:text;not null;index"`
	Message     string `gorm:"type:text;not null"`
	Command     string `gorm:"type:text;index"`
	Status      string `gorm:"type:text;not null"`
	Response    string `gorm:"type:text"`
	WebhookData string `gorm:"type:text"`
	ProcessedAt time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SmsLogModel) TableName() string {
	return "sms_logs"
}
