package repository

import (
	"context"

	"farmgrid/internal/domain/entity"
)

// SmsLogRepository appends to the inbound SMS audit trail.
type SmsLogRepository interface {
	Create(ctx context.Context, log *entity.SmsLog) error
}
