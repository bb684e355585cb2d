package mapper

import (
	"encoding/json"

	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/model"

	"gorm.io/datatypes"
)

type SessionRecordMapper struct{}

func NewSessionRecordMapper() *SessionRecordMapper {
	return &SessionRecordMapper{}
}

func (m *SessionRecordMapper) ToEntity(r *model.SessionRecord) *entity.SessionRecord {
	if r == nil {
		return nil
	}
	return &entity.SessionRecord{
		Id:              r.Id,
		SessionId:       r.SessionId,
		Group:           r.Group,
		Style:           r.Style,
		Pack:            r.Pack,
		Difficulty:      r.Difficulty,
		Consented:       r.Consented,
		Accent:          r.Accent,
		Notes:           r.Notes,
		MaxQuestions:    r.MaxQuestions,
		DurationSeconds: r.DurationSeconds,
		QuestionsAsked:  r.QuestionsAsked,
		EndReason:       r.EndReason,
		StartedAt:       r.StartedAt,
		EndedAt:         r.EndedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *SessionRecordMapper) ToModel(r *entity.SessionRecord) *model.SessionRecord {
	if r == nil {
		return nil
	}
	return &model.SessionRecord{
		Id:              r.Id,
		SessionId:       r.SessionId,
		Group:           r.Group,
		Style:           r.Style,
		Pack:            r.Pack,
		Difficulty:      r.Difficulty,
		Consented:       r.Consented,
		Accent:          r.Accent,
		Notes:           r.Notes,
		MaxQuestions:    r.MaxQuestions,
		DurationSeconds: r.DurationSeconds,
		QuestionsAsked:  r.QuestionsAsked,
		EndReason:       r.EndReason,
		StartedAt:       r.StartedAt,
		EndedAt:         r.EndedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func (m *SessionRecordMapper) ToEntities(records []*model.SessionRecord) []*entity.SessionRecord {
	entities := make([]*entity.SessionRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

type AnswerRecordMapper struct{}

func NewAnswerRecordMapper() *AnswerRecordMapper {
	return &AnswerRecordMapper{}
}

func (m *AnswerRecordMapper) ToEntity(r *model.AnswerRecord) *entity.AnswerRecord {
	if r == nil {
		return nil
	}
	return &entity.AnswerRecord{
		Id:           r.Id,
		SessionId:    r.SessionId,
		Group:        r.Group,
		Question:     r.Question,
		Answer:       r.Answer,
		Turn:         r.Turn,
		IsFollowUp:   r.IsFollowUp,
		NonAnswer:    r.NonAnswer,
		SpeakingRate: r.SpeakingRate,
		PauseRatio:   r.PauseRatio,
		Gaze:         r.Gaze,
		Fillers:      r.Fillers,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *AnswerRecordMapper) ToModel(r *entity.AnswerRecord) *model.AnswerRecord {
	if r == nil {
		return nil
	}
	return &model.AnswerRecord{
		Id:           r.Id,
		SessionId:    r.SessionId,
		Group:        r.Group,
		Question:     r.Question,
		Answer:       r.Answer,
		Turn:         r.Turn,
		IsFollowUp:   r.IsFollowUp,
		NonAnswer:    r.NonAnswer,
		SpeakingRate: r.SpeakingRate,
		PauseRatio:   r.PauseRatio,
		Gaze:         r.Gaze,
		Fillers:      r.Fillers,
		CreatedAt:    r.CreatedAt,
	}
}

func (m *AnswerRecordMapper) ToEntities(records []*model.AnswerRecord) []*entity.AnswerRecord {
	entities := make([]*entity.AnswerRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

type CheckinRecordMapper struct{}

func NewCheckinRecordMapper() *CheckinRecordMapper {
	return &CheckinRecordMapper{}
}

func (m *CheckinRecordMapper) ToEntity(r *model.CheckinRecord) *entity.CheckinRecord {
	if r == nil {
		return nil
	}
	return &entity.CheckinRecord{
		Id:         r.Id,
		SessionId:  r.SessionId,
		Group:      r.Group,
		Day:        r.Day,
		Confidence: r.Confidence,
		Stress:     r.Stress,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *CheckinRecordMapper) ToModel(r *entity.CheckinRecord) *model.CheckinRecord {
	if r == nil {
		return nil
	}
	return &model.CheckinRecord{
		Id:         r.Id,
		SessionId:  r.SessionId,
		Group:      r.Group,
		Day:        r.Day,
		Confidence: r.Confidence,
		Stress:     r.Stress,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *CheckinRecordMapper) ToEntities(records []*model.CheckinRecord) []*entity.CheckinRecord {
	entities := make([]*entity.CheckinRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

type TelemetryRecordMapper struct{}

func NewTelemetryRecordMapper() *TelemetryRecordMapper {
	return &TelemetryRecordMapper{}
}

func (m *TelemetryRecordMapper) ToEntity(r *model.TelemetryRecord) *entity.TelemetryRecord {
	if r == nil {
		return nil
	}

	var payload map[string]interface{}
	if len(r.Payload) > 0 {
		// Corrupt rows degrade to a nil payload instead of failing the read.
		_ = json.Unmarshal(r.Payload, &payload)
	}

	return &entity.TelemetryRecord{
		Id:        r.Id,
		SessionId: r.SessionId,
		Group:     r.Group,
		Event:     r.Event,
		Payload:   payload,
		CreatedAt: r.CreatedAt,
	}
}

func (m *TelemetryRecordMapper) ToModel(r *entity.TelemetryRecord) *model.TelemetryRecord {
	if r == nil {
		return nil
	}

	var payload datatypes.JSON
	if r.Payload != nil {
		if raw, err := json.Marshal(r.Payload); err == nil {
			payload = datatypes.JSON(raw)
		}
	}

	return &model.TelemetryRecord{
		Id:        r.Id,
		SessionId: r.SessionId,
		Group:     r.Group,
		Event:     r.Event,
		Payload:   payload,
		CreatedAt: r.CreatedAt,
	}
}

func (m *TelemetryRecordMapper) ToEntities(records []*model.TelemetryRecord) []*entity.TelemetryRecord {
	entities := make([]*entity.TelemetryRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
