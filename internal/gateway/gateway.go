package gateway

import (
	"context"
	"strings"
	"time"

	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/heuristics"
	"ai-interviewer-be/internal/pkg/logger"
	"ai-interviewer-be/pkg/llm"
)

// Gateway wraps the external text-generation service. Every call either
// returns usable content or reports unavailable; callers fall back to
// deterministic content and the conversation never stalls on this layer.

type HistoryPair struct {
	Question string
	Answer   string
}

type QuestionRequest struct {
	Style        constant.Style
	Pack         constant.Pack
	Difficulty   constant.Difficulty
	Turn         int
	LastQuestion string
	History      []HistoryPair
}

type CoachingRequest struct {
	Style      constant.Style
	Pack       constant.Pack
	Difficulty constant.Difficulty
	Turn       int
	Question   string
	Answer     string
	Metrics    *heuristics.DeliveryMetrics
}

type Tip struct {
	Summary string
	Detail  string
}

type CoachingResult struct {
	FollowUp string
	Tips     []Tip
}

type ClarificationRequest struct {
	Style         constant.Style
	Pack          constant.Pack
	Difficulty    constant.Difficulty
	Question      string
	Clarification string
}

type Gateway struct {
	provider llm.LLMProvider
	timeout  time.Duration
	logger   logger.ILogger
}

func New(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) *Gateway {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Gateway{
		provider: provider,
		timeout:  timeout,
		logger:   log,
	}
}

// NextQuestion asks the model for the next interview question. The second
// return value is false when the service is unavailable or the reply is
// unusable.
func (g *Gateway) NextQuestion(ctx context.Context, req QuestionRequest) (string, bool) {
	content, ok := g.call(ctx, constant.QuestionSystemPrompt, buildQuestionPrompt(req), 80)
	if !ok {
		return "", false
	}
	question := parseQuestionResponse(content)
	if question == "" {
		g.logger.Warn("Gateway", "Question parse failed", map[string]interface{}{
			"turn": req.Turn, "raw": clip(content, 200),
		})
		return "", false
	}
	return question, true
}

// Coaching asks the model for a follow-up plus tips. A result with only one
// of the two is still a success; the caller decides what to do with gaps.
func (g *Gateway) Coaching(ctx context.Context, req CoachingRequest) (CoachingResult, bool) {
	content, ok := g.call(ctx, constant.CoachingSystemPrompt, buildCoachingPrompt(req), 240)
	if !ok {
		return CoachingResult{}, false
	}
	result, ok := parseCoachingResponse(content)
	if !ok {
		g.logger.Warn("Gateway", "Coaching parse failed", map[string]interface{}{
			"turn": req.Turn, "raw": clip(content, 200),
		})
		return CoachingResult{}, false
	}
	return result, true
}

// Clarification asks the model to clarify the current question.
func (g *Gateway) Clarification(ctx context.Context, req ClarificationRequest) (string, bool) {
	content, ok := g.call(ctx, constant.ClarificationSystemPrompt, buildClarificationPrompt(req), 160)
	if !ok {
		return "", false
	}
	message := parseClarificationResponse(content)
	if message == "" {
		return "", false
	}
	return message, true
}

func (g *Gateway) call(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := g.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		llm.WithMaxTokens(maxTokens),
		llm.WithTemperature(0.8),
	)
	if err != nil {
		g.logger.Warn("Gateway", "Generation call failed", map[string]interface{}{"error": err.Error()})
		return "", false
	}
	content = strings.TrimSpace(content)
	if content == "" {
		g.logger.Warn("Gateway", "Generation returned empty content", nil)
		return "", false
	}
	return content, true
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
