package entity

import "time"

// SmsLogStatus is the processing outcome recorded in the audit trail.
type SmsLogStatus string

const (
	SmsLogStatusSuccess SmsLogStatus = "SUCCESS"
	SmsLogStatusFailed  SmsLogStatus = "FAILED"
)

// SmsLog is one append-only audit row per inbound SMS. It is written for
// every webhook delivery regardless of whether the command succeeded.
type SmsLog struct {
	ID          int64
	PhoneNumber string
	Message     string
	Command     string
	Status      SmsLogStatus
	Response    string
	WebhookData string
	ProcessedAt time.Time
	CreatedAt   time.Time
}
