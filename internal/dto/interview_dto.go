package dto

import "github.com/google/uuid"

// Inbound websocket messages. Every frame is a single JSON object carrying a
// "type" field; the remaining fields depend on the type.

type InboundEnvelope struct {
	Type string `json:"type"`
}

type StartSessionRequest struct {
	Style           string   `json:"style"`
	Group           string   `json:"group"`
	Consent         bool     `json:"consent"`
	Accent          string   `json:"accent"`
	Notes           string   `json:"notes"`
	Pack            string   `json:"pack"`
	Difficulty      string   `json:"difficulty"`
	MaxQuestions    int      `json:"maxQuestions"`
	DurationSeconds int      `json:"durationSeconds"`
	CustomQuestions []string `json:"customQuestions"`
}

type SwitchStyleRequest struct {
	Style string `json:"style"`
}

type AnswerMetrics struct {
	SpeakingRate *float64 `json:"speakingRate"`
	PauseRatio   *float64 `json:"pauseRatio"`
	Gaze         *float64 `json:"gaze"`
	Fillers      *int     `json:"fillers"`
}

type UserAnswerRequest struct {
	Answer  string         `json:"answer"`
	Metrics *AnswerMetrics `json:"metrics"`
}

type UserClarificationRequest struct {
	Question      string `json:"question"`
	Clarification string `json:"clarification"`
	Text          string `json:"text"`
}

// Body returns the first populated field, the client may use any of them.
func (r *UserClarificationRequest) Body() string {
	if r.Question != "" {
		return r.Question
	}
	if r.Clarification != "" {
		return r.Clarification
	}
	return r.Text
}

type CheckinMessage struct {
	Group      string `json:"group"`
	Day        int    `json:"day"`
	Confidence int    `json:"confidence"`
	Stress     int    `json:"stress"`
	Notes      string `json:"notes"`
}

type TelemetryMessage struct {
	Event     string                 `json:"event"`
	LatencyMs *float64               `json:"latencyMs"`
	Data      map[string]interface{} `json:"data"`
}

// Outbound websocket messages.

type SessionReadyMessage struct {
	Type string `json:"type"`
}

type SessionStartedMessage struct {
	Type            string    `json:"type"`
	SessionId       uuid.UUID `json:"session_id"`
	Style           string    `json:"style"`
	Pack            string    `json:"pack"`
	Difficulty      string    `json:"difficulty"`
	MaxQuestions    int       `json:"max_questions"`
	DurationSeconds int       `json:"duration_seconds"`
}

type StyleSwitchedMessage struct {
	Type  string `json:"type"`
	Style string `json:"style"`
}

type QuestionMessage struct {
	Type     string `json:"type"`
	Turn     int    `json:"turn"`
	Question string `json:"question"`
	Style    string `json:"style"`
	Source   string `json:"source"`
	Preface  string `json:"preface,omitempty"`
}

type InterviewerMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ClarificationMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

type TipItem struct {
	Summary string `json:"summary"`
	Detail  string `json:"detail"`
}

type TipsMessage struct {
	Type  string    `json:"type"`
	Turn  int       `json:"turn"`
	Items []TipItem `json:"items"`
}

type SessionEndedMessage struct {
	Type    string `json:"type"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type PongMessage struct {
	Type string `json:"type"`
}

type CheckinLoggedMessage struct {
	Type string `json:"type"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
