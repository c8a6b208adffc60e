package postgres

import (
	"context"

	"farmgrid/internal/domain/entity"
	domainerrors "farmgrid/internal/domain/errors"
	"farmgrid/internal/domain/repository"
	"farmgrid/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// smsLogRepository implements the repository.SmsLogRepository interface.
type smsLogRepository struct {
	db *gorm.DB
}

// NewSmsLogRepository is the constructor for smsLogRepository.
func NewSmsLogRepository(db *gorm.DB) repository.SmsLogRepository {
	return &smsLogRepository{
		db: db,
	}
}

// Create appends one audit row. The table is append-only; there are no
// update or delete operations.
func (repo *smsLogRepository) Create(ctx context.Context, log *entity.SmsLog) error {
	logM := fromSmsLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create sms log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// fromSmsLogDomain converts a domain SmsLog entity to a GORM SmsLogModel.
func fromSmsLogDomain(data *entity.SmsLog) *model.SmsLogModel {
	if data == nil {
		return nil
	}

	return &model.SmsLogModel{
		ID:          data.ID,
		PhoneNumber: data.PhoneNumber,
		Message:     data.Message,
		Command:     data.Command,
		Status:      string(data.Status),
		Response:    data.Response,
		WebhookData: data.WebhookData,
		ProcessedAt: data.ProcessedAt,
		CreatedAt:   data.CreatedAt,
	}
}
