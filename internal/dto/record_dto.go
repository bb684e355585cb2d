package dto

import "ai-interviewer-be/internal/entity"

const (
	RecordKindSession   = "session"
	RecordKindAnswer    = "answer"
	RecordKindCheckin   = "checkin"
	RecordKindTelemetry = "telemetry"
)

// RecordEnvelope carries exactly one record through the persistence pipeline.
// Kind selects which pointer is set.
type RecordEnvelope struct {
	Kind      string                  `json:"kind"`
	Session   *entity.SessionRecord   `json:"session,omitempty"`
	Answer    *entity.AnswerRecord    `json:"answer,omitempty"`
	Checkin   *entity.CheckinRecord   `json:"checkin,omitempty"`
	Telemetry *entity.TelemetryRecord `json:"telemetry,omitempty"`
}
