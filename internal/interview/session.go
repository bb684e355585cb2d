package interview

import (
	"strings"
	"time"

	"ai-interviewer-be/internal/catalog"
	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/gateway"

	"github.com/google/uuid"
)

// Session holds the per-connection interview state. It is owned by a single
// engine and never shared across goroutines.
type Session struct {
	Id         uuid.UUID
	Style      constant.Style
	Pack       constant.Pack
	Difficulty constant.Difficulty
	Group      string
	Consented  bool
	Accent     string
	Notes      string

	// MaxQuestions and Duration are zero when unbounded.
	MaxQuestions int
	Duration     time.Duration
	StartedAt    time.Time
	EndsAt       time.Time

	Turn             int
	LastQuestion     string
	History          []gateway.HistoryPair
	AwaitingFollowUp bool
	LastWasFollowUp  bool
	LastNonAnswer    bool
	Ended            bool
	Started          bool

	CustomQuestions []string
	customNext      int
}

func NewSession() Session {
	return Session{
		Id:         uuid.New(),
		Style:      constant.StyleNeutral,
		Pack:       constant.PackGeneral,
		Difficulty: constant.DifficultyStandard,
		Group:      constant.DefaultGroup,
	}
}

// NextCustomQuestion pops the next queued custom question, or "" when the
// queue is drained.
func (s *Session) NextCustomQuestion() string {
	if s.customNext >= len(s.CustomQuestions) {
		return ""
	}
	q := s.CustomQuestions[s.customNext]
	s.customNext++
	return q
}

// RememberExchange appends a (question, answer) pair to the rolling history,
// keeping only the most recent entries.
func (s *Session) RememberExchange(question, answer string) {
	s.History = append(s.History, gateway.HistoryPair{Question: question, Answer: answer})
	if len(s.History) > constant.MaxHistoryPairs {
		s.History = s.History[len(s.History)-constant.MaxHistoryPairs:]
	}
}

// Deadline reports the wall-clock moment the session's time budget runs out.
// ok is false when the session has no time limit.
func (s *Session) Deadline() (time.Time, bool) {
	if s.EndsAt.IsZero() {
		return time.Time{}, false
	}
	return s.EndsAt, true
}

// ShouldEnd checks the termination conditions in priority order: the question
// budget first, then the time budget.
func (s *Session) ShouldEnd(now time.Time) (constant.EndReason, bool) {
	if s.MaxQuestions > 0 && s.Turn >= s.MaxQuestions {
		return constant.EndMaxQuestions, true
	}
	if !s.EndsAt.IsZero() && !now.Before(s.EndsAt) {
		return constant.EndTimeLimit, true
	}
	return "", false
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// sanitizeCustomQuestions trims, drops empties, truncates long entries, and
// caps the total count.
func sanitizeCustomQuestions(raw []string) []string {
	questions := make([]string, 0, len(raw))
	for _, q := range raw {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		q = catalog.Truncate(q, constant.MaxCustomQuestionLen)
		questions = append(questions, q)
		if len(questions) >= constant.MaxCustomQuestions {
			break
		}
	}
	return questions
}
