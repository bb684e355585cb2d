package service

import (
	"context"
	"testing"

	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/repository/contract"
	"ai-interviewer-be/internal/repository/unitofwork"
	"ai-interviewer-be/pkg/speech"

	"github.com/google/uuid"
)

type stubTranscriber struct {
	result speech.Transcription
}

func (t *stubTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (*speech.Transcription, error) {
	return &t.result, nil
}

type captureRecords struct {
	telemetry []*entity.TelemetryRecord
}

func (r *captureRecords) RecordSession(record *entity.SessionRecord) {}
func (r *captureRecords) RecordAnswer(record *entity.AnswerRecord)   {}
func (r *captureRecords) RecordCheckin(record *entity.CheckinRecord) {}
func (r *captureRecords) RecordTelemetry(record *entity.TelemetryRecord) {
	r.telemetry = append(r.telemetry, record)
}

type stubSessionRepo struct {
	record  *entity.SessionRecord
	byGroup map[string][]*entity.SessionRecord
}

func (r *stubSessionRepo) Create(ctx context.Context, record *entity.SessionRecord) error { return nil }
func (r *stubSessionRepo) Update(ctx context.Context, record *entity.SessionRecord) error { return nil }
func (r *stubSessionRepo) FindBySessionId(ctx context.Context, sessionId uuid.UUID) (*entity.SessionRecord, error) {
	if r.record != nil && r.record.SessionId == sessionId {
		return r.record, nil
	}
	return nil, nil
}
func (r *stubSessionRepo) FindByGroup(ctx context.Context, group string) ([]*entity.SessionRecord, error) {
	return r.byGroup[group], nil
}

type stubAnswerRepo struct {
	byGroup map[string][]*entity.AnswerRecord
}

func (r *stubAnswerRepo) Create(ctx context.Context, record *entity.AnswerRecord) error { return nil }
func (r *stubAnswerRepo) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.AnswerRecord, error) {
	return nil, nil
}
func (r *stubAnswerRepo) FindByGroup(ctx context.Context, group string) ([]*entity.AnswerRecord, error) {
	return r.byGroup[group], nil
}

type stubCheckinRepo struct {
	byGroup map[string][]*entity.CheckinRecord
}

func (r *stubCheckinRepo) Create(ctx context.Context, record *entity.CheckinRecord) error { return nil }
func (r *stubCheckinRepo) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.CheckinRecord, error) {
	return nil, nil
}
func (r *stubCheckinRepo) FindByGroup(ctx context.Context, group string) ([]*entity.CheckinRecord, error) {
	return r.byGroup[group], nil
}

type stubTelemetryRepo struct {
	byGroupAndEvent map[string][]*entity.TelemetryRecord
}

func (r *stubTelemetryRepo) Create(ctx context.Context, record *entity.TelemetryRecord) error {
	return nil
}
func (r *stubTelemetryRepo) FindBySessionId(ctx context.Context, sessionId uuid.UUID) ([]*entity.TelemetryRecord, error) {
	return nil, nil
}
func (r *stubTelemetryRepo) FindByGroupAndEvent(ctx context.Context, group string, event string) ([]*entity.TelemetryRecord, error) {
	return r.byGroupAndEvent[group+"/"+event], nil
}

type stubUnitOfWork struct {
	sessions  *stubSessionRepo
	answers   *stubAnswerRepo
	checkins  *stubCheckinRepo
	telemetry *stubTelemetryRepo
}

func (u *stubUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *stubUnitOfWork) Commit() error                   { return nil }
func (u *stubUnitOfWork) Rollback() error                 { return nil }
func (u *stubUnitOfWork) SessionRecordRepository() contract.SessionRecordRepository {
	return u.sessions
}
func (u *stubUnitOfWork) AnswerRecordRepository() contract.AnswerRecordRepository {
	return u.answers
}
func (u *stubUnitOfWork) CheckinRecordRepository() contract.CheckinRecordRepository {
	return u.checkins
}
func (u *stubUnitOfWork) TelemetryRecordRepository() contract.TelemetryRecordRepository {
	return u.telemetry
}

type stubFactory struct {
	uow *stubUnitOfWork
}

func (f *stubFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type nopServiceLogger struct{}

func (nopServiceLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopServiceLogger) Info(module, message string, details map[string]interface{})  {}
func (nopServiceLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopServiceLogger) Error(module, message string, details map[string]interface{}) {}
func (nopServiceLogger) Sync() error                                                  { return nil }

func TestTranscribeLabelsTelemetryWithSessionGroup(t *testing.T) {
	sessionId := uuid.New()
	factory := &stubFactory{uow: &stubUnitOfWork{sessions: &stubSessionRepo{
		record: &entity.SessionRecord{SessionId: sessionId, Group: "control"},
	}}}
	records := &captureRecords{}
	svc := NewSpeechService(
		&stubTranscriber{result: speech.Transcription{Text: "hello", DurationSeconds: 1.2}},
		nil,
		records,
		factory,
		nopServiceLogger{},
	)

	resp, err := svc.Transcribe(context.Background(), []byte("audio"), "clip.webm", sessionId.String())
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if resp.Text != "hello" {
		t.Fatalf("text = %q", resp.Text)
	}
	if len(records.telemetry) != 1 {
		t.Fatalf("telemetry records = %d", len(records.telemetry))
	}
	if got := records.telemetry[0].Group; got != "control" {
		t.Fatalf("telemetry group = %q, want the session record's group", got)
	}
}

func TestTranscribeUnknownSessionKeepsDefaultGroup(t *testing.T) {
	factory := &stubFactory{uow: &stubUnitOfWork{sessions: &stubSessionRepo{}}}
	records := &captureRecords{}
	svc := NewSpeechService(
		&stubTranscriber{result: speech.Transcription{Text: "hi"}},
		nil,
		records,
		factory,
		nopServiceLogger{},
	)

	if _, err := svc.Transcribe(context.Background(), []byte("audio"), "", uuid.New().String()); err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if len(records.telemetry) != 1 {
		t.Fatalf("telemetry records = %d", len(records.telemetry))
	}
	if got := records.telemetry[0].Group; got != constant.DefaultGroup {
		t.Fatalf("telemetry group = %q", got)
	}
}
