package contract

import (
	"context"

	"ai-interviewer-be/internal/entity"

	"github.com/google/uuid"
)

type CheckinRecordRepository interface {
	Create(ctx context.Context, record *entity.CheckinRecord) error
	FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.CheckinRecord, error)
	FindByGroup(ctx context.Context, group string) ([]*entity.CheckinRecord, error)
}
