package contract

import (
	"context"

	"ai-interviewer-be/internal/entity"

	"github.com/google/uuid"
)

type AnswerRecordRepository interface {
	Create(ctx context.Context, record *entity.AnswerRecord) error
	FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.AnswerRecord, error)
	FindByGroup(ctx context.Context, group string) ([]*entity.AnswerRecord, error)
}
