package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCheckinRequest struct {
	SessionId  uuid.UUID `json:"session_id" validate:"required"`
	Group      string    `json:"group"`
	Day        int       `json:"day" validate:"min=0"`
	Confidence int       `json:"confidence" validate:"min=0,max=10"`
	Stress     int       `json:"stress" validate:"min=0,max=10"`
	Notes      string    `json:"notes"`
}

type CheckinResponse struct {
	Id         uuid.UUID `json:"id"`
	SessionId  uuid.UUID `json:"session_id"`
	Group      string    `json:"group"`
	Day        int       `json:"day"`
	Confidence int       `json:"confidence"`
	Stress     int       `json:"stress"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SessionExport struct {
	SessionId       uuid.UUID  `json:"session_id"`
	Group           string     `json:"group"`
	Style           string     `json:"style"`
	Pack            string     `json:"pack"`
	Difficulty      string     `json:"difficulty"`
	Consented       bool       `json:"consented"`
	Accent          string     `json:"accent,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	MaxQuestions    int        `json:"max_questions"`
	DurationSeconds int        `json:"duration_seconds"`
	QuestionsAsked  int        `json:"questions_asked"`
	EndReason       string     `json:"end_reason,omitempty"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
}

type AnswerExport struct {
	Turn         int       `json:"turn"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	IsFollowUp   bool      `json:"is_follow_up"`
	NonAnswer    bool      `json:"non_answer"`
	SpeakingRate *float64  `json:"speaking_rate,omitempty"`
	PauseRatio   *float64  `json:"pause_ratio,omitempty"`
	Gaze         *float64  `json:"gaze,omitempty"`
	Fillers      *int      `json:"fillers,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type TelemetryExport struct {
	Event     string                 `json:"event"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type SessionExportResponse struct {
	Session   *SessionExport    `json:"session"`
	Answers   []AnswerExport    `json:"answers"`
	Checkins  []CheckinResponse `json:"checkins"`
	Telemetry []TelemetryExport `json:"telemetry"`
}

type GroupMetrics struct {
	Sessions          int      `json:"sessions"`
	CompletedSessions int      `json:"completed_sessions"`
	Answers           int      `json:"answers"`
	Checkins          int      `json:"checkins"`
	SttEvents         int      `json:"stt_events"`
	AvgQuestionsAsked float64  `json:"avg_questions_asked"`
	AvgAnswerChars    float64  `json:"avg_answer_chars"`
	NonAnswerRate     float64  `json:"non_answer_rate"`
	AvgSpeakingRate   *float64 `json:"avg_speaking_rate,omitempty"`
	AvgPauseRatio     *float64 `json:"avg_pause_ratio,omitempty"`
	AvgGaze           *float64 `json:"avg_gaze,omitempty"`
	AvgFillers        *float64 `json:"avg_fillers,omitempty"`
	AvgConfidence     *float64 `json:"avg_confidence,omitempty"`
	AvgStress         *float64 `json:"avg_stress,omitempty"`
	AvgSttLatencyMs   *float64 `json:"avg_stt_latency_ms,omitempty"`
}

type MetricsDeltas struct {
	AvgAnswerChars  float64  `json:"avg_answer_chars"`
	NonAnswerRate   float64  `json:"non_answer_rate"`
	AvgSpeakingRate *float64 `json:"avg_speaking_rate,omitempty"`
	AvgPauseRatio   *float64 `json:"avg_pause_ratio,omitempty"`
	AvgGaze         *float64 `json:"avg_gaze,omitempty"`
	AvgFillers      *float64 `json:"avg_fillers,omitempty"`
	AvgConfidence   *float64 `json:"avg_confidence,omitempty"`
	AvgStress       *float64 `json:"avg_stress,omitempty"`
	AvgSttLatencyMs *float64 `json:"avg_stt_latency_ms,omitempty"`
}

type MetricsSummaryResponse struct {
	Groups map[string]GroupMetrics `json:"groups"`
	// Deltas compare the treatment group against control; a mean delta is
	// nil when either side has no observations yet.
	Deltas *MetricsDeltas `json:"deltas,omitempty"`
}
