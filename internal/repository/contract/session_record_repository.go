package contract

import (
	"context"

	"ai-interviewer-be/internal/entity"

	"github.com/google/uuid"
)

type SessionRecordRepository interface {
	Create(ctx context.Context, record *entity.SessionRecord) error
	Update(ctx context.Context, record *entity.SessionRecord) error
	FindBySessionId(ctx context.Context, sessionId uuid.UUID) (*entity.SessionRecord, error)
	FindByGroup(ctx context.Context, group string) ([]*entity.SessionRecord, error)
}
