package unitofwork

import (
	"context"

	"ai-interviewer-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRecordRepository() contract.SessionRecordRepository
	AnswerRecordRepository() contract.AnswerRecordRepository
	CheckinRecordRepository() contract.CheckinRecordRepository
	TelemetryRecordRepository() contract.TelemetryRecordRepository
}
