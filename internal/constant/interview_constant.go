package constant

import "strings"

// Style is the interviewer persona. Values arriving over the wire are
// validated once at the session boundary; everything past that point only
// sees one of the three closed values.
type Style string

const (
	StyleSupportive Style = "supportive"
	StyleNeutral    Style = "neutral"
	StyleCold       Style = "cold"
)

func ParseStyle(v string) (Style, bool) {
	switch Style(strings.ToLower(strings.TrimSpace(v))) {
	case StyleSupportive:
		return StyleSupportive, true
	case StyleNeutral:
		return StyleNeutral, true
	case StyleCold:
		return StyleCold, true
	}
	return "", false
}

// Pack identifies a question catalog. Unknown pack ids are normalized to
// PackGeneral so selection falls back to the per-style banks.
type Pack string

const (
	PackGeneral      Pack = "general"
	PackBehavioral   Pack = "behavioral"
	PackSystemDesign Pack = "system_design"
)

func ParsePack(v string) Pack {
	switch Pack(strings.ToLower(strings.TrimSpace(v))) {
	case PackBehavioral:
		return PackBehavioral
	case PackSystemDesign:
		return PackSystemDesign
	}
	return PackGeneral
}

type Difficulty string

const (
	DifficultyStandard Difficulty = "standard"
	DifficultyHard     Difficulty = "hard"
)

func ParseDifficulty(v string) Difficulty {
	if Difficulty(strings.ToLower(strings.TrimSpace(v))) == DifficultyHard {
		return DifficultyHard
	}
	return DifficultyStandard
}

// Intent is the resolved follow-up angle for a substantive answer.
type Intent string

const (
	IntentSummarize Intent = "summarize"
	IntentClarify   Intent = "clarify"
	IntentNumbers   Intent = "numbers"
	IntentRole      Intent = "role"
	IntentTradeoff  Intent = "tradeoff"
	IntentImpact    Intent = "impact"
)

// QuestionSource is the provenance tag on outgoing questions.
type QuestionSource string

const (
	SourceLLM      QuestionSource = "llm"
	SourceFallback QuestionSource = "fallback"
	SourceCustom   QuestionSource = "custom"
	SourceFollowUp QuestionSource = "follow_up"
)

// ClarificationSource is the provenance tag on clarification replies.
type ClarificationSource string

const (
	ClarificationGuardrail ClarificationSource = "guardrail"
	ClarificationLLM       ClarificationSource = "llm"
	ClarificationFallback  ClarificationSource = "fallback"
)

// EndReason explains why a session terminated.
type EndReason string

const (
	EndMaxQuestions EndReason = "max_questions"
	EndTimeLimit    EndReason = "time_limit"
	EndManual       EndReason = "manual"
)

// Inbound websocket message types.
const (
	MsgStartSession      = "start_session"
	MsgSwitchStyle       = "switch_style"
	MsgUserAnswer        = "user_answer"
	MsgUserClarification = "user_clarification"
	MsgStopSession       = "stop_session"
	MsgPing              = "ping"
	MsgCheckin           = "checkin"
	MsgTelemetry         = "telemetry"
)

// Outbound websocket message types.
const (
	MsgSessionReady       = "session_ready"
	MsgSessionStarted     = "session_started"
	MsgStyleSwitched      = "style_switched"
	MsgQuestion           = "question"
	MsgInterviewerMessage = "interviewer_message"
	MsgClarification      = "clarification"
	MsgTips               = "tips"
	MsgSessionEnded       = "session_ended"
	MsgPong               = "pong"
	MsgCheckinLogged      = "checkin_logged"
	MsgError              = "error"
)

// Telemetry event types written by the engine itself.
const (
	TelemetryEventQuestion     = "question"
	TelemetryEventSessionEnded = "session_ended"
	TelemetryEventSTT          = "stt"
)

// Session bounds and wire limits.
const (
	MaxHistoryPairs = 4
	HistoryInPrompt = 3

	MinMaxQuestions = 1
	MaxMaxQuestions = 50

	MinDurationSeconds = 30
	MaxDurationSeconds = 10800

	MaxCustomQuestions   = 20
	MaxCustomQuestionLen = 300

	MaxClarificationInputLen   = 400
	MaxClarificationMessageLen = 700
	MaxPromptRestateLen        = 280
)

const DefaultGroup = "treatment"
