package contract

import (
	"context"

	"ai-interviewer-be/internal/entity"

	"github.com/google/uuid"
)

type TelemetryRecordRepository interface {
	Create(ctx context.Context, record *entity.TelemetryRecord) error
	FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.TelemetryRecord, error)
	FindByGroupAndEvent(ctx context.Context, group string, event string) ([]*entity.TelemetryRecord, error)
}
