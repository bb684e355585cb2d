package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ai-interviewer-be/internal/catalog"
	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/gateway"
	"ai-interviewer-be/internal/heuristics"
	"ai-interviewer-be/internal/pkg/logger"

	"github.com/google/uuid"
)

const logModule = "interview.engine"

// Generator produces model-backed content. Every method reports availability
// instead of an error; the engine falls back to catalog content when false.
type Generator interface {
	NextQuestion(ctx context.Context, req gateway.QuestionRequest) (string, bool)
	Coaching(ctx context.Context, req gateway.CoachingRequest) (gateway.CoachingResult, bool)
	Clarification(ctx context.Context, req gateway.ClarificationRequest) (string, bool)
}

// Recorder accepts append-only research records. Implementations are
// fire-and-forget; a persistence failure never disturbs the interview.
type Recorder interface {
	RecordSession(record *entity.SessionRecord)
	RecordAnswer(record *entity.AnswerRecord)
	RecordCheckin(record *entity.CheckinRecord)
	RecordTelemetry(record *entity.TelemetryRecord)
}

// Sender pushes outbound messages to the connected client.
type Sender interface {
	Send(message interface{}) error
	Close() error
}

// Engine drives one interview conversation. It is not safe for concurrent
// use; the connection loop feeds it one message at a time.
type Engine struct {
	session Session
	record  *entity.SessionRecord
	gen     Generator
	rec     Recorder
	send    Sender
	log     logger.ILogger
	now     func() time.Time
	rng     *rand.Rand
}

func NewEngine(gen Generator, rec Recorder, send Sender, log logger.ILogger) *Engine {
	return &Engine{
		session: NewSession(),
		gen:     gen,
		rec:     rec,
		send:    send,
		log:     log,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *Engine) Ended() bool {
	return e.session.Ended
}

func (e *Engine) SessionId() uuid.UUID {
	return e.session.Id
}

// Deadline exposes the session's time budget to the connection loop.
func (e *Engine) Deadline() (time.Time, bool) {
	return e.session.Deadline()
}

// Greet announces readiness right after the connection is established.
func (e *Engine) Greet() {
	e.sendJSON(dto.SessionReadyMessage{Type: constant.MsgSessionReady})
}

// HandleTimeout is invoked by the connection loop when the read deadline
// derived from the time budget fires.
func (e *Engine) HandleTimeout() {
	if !e.session.Ended {
		e.endSession(constant.EndTimeLimit)
	}
}

// HandleRaw dispatches a single inbound frame. Malformed input produces an
// error message and leaves the session untouched.
func (e *Engine) HandleRaw(ctx context.Context, raw []byte) {
	var env dto.InboundEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Type == "" {
		e.sendError("invalid message: expected a JSON object with a \"type\" field")
		return
	}

	switch env.Type {
	case constant.MsgStartSession:
		e.handleStart(ctx, raw)
	case constant.MsgSwitchStyle:
		e.handleSwitchStyle(ctx, raw)
	case constant.MsgUserAnswer:
		e.handleAnswer(ctx, raw)
	case constant.MsgUserClarification:
		e.handleClarification(ctx, raw)
	case constant.MsgStopSession:
		e.endSession(constant.EndManual)
	case constant.MsgPing:
		e.sendJSON(dto.PongMessage{Type: constant.MsgPong})
	case constant.MsgCheckin:
		e.handleCheckin(raw)
	case constant.MsgTelemetry:
		e.handleTelemetry(raw)
	default:
		e.sendError(fmt.Sprintf("unrecognized message type: %s", env.Type))
	}
}

// handleStart (re)initializes the session from the payload. It is accepted at
// any point before the session ends, a mid-interview start is a restart.
func (e *Engine) handleStart(ctx context.Context, raw []byte) {
	var req dto.StartSessionRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		e.sendError("invalid start_session payload")
		return
	}

	// Every start mints a fresh session id. A restart must not collide with
	// the prior run's persisted records.
	s := NewSession()
	if style, ok := constant.ParseStyle(req.Style); ok {
		s.Style = style
	}
	s.Pack = constant.ParsePack(req.Pack)
	s.Difficulty = constant.ParseDifficulty(req.Difficulty)
	if group := strings.TrimSpace(req.Group); group != "" {
		s.Group = group
	}
	s.Consented = req.Consent
	s.Accent = strings.TrimSpace(req.Accent)
	s.Notes = strings.TrimSpace(req.Notes)
	if req.MaxQuestions > 0 {
		s.MaxQuestions = clampInt(req.MaxQuestions, constant.MinMaxQuestions, constant.MaxMaxQuestions)
	}
	if req.DurationSeconds > 0 {
		secs := clampInt(req.DurationSeconds, constant.MinDurationSeconds, constant.MaxDurationSeconds)
		s.Duration = time.Duration(secs) * time.Second
	}
	s.CustomQuestions = sanitizeCustomQuestions(req.CustomQuestions)
	s.StartedAt = e.now()
	if s.Duration > 0 {
		s.EndsAt = s.StartedAt.Add(s.Duration)
	}
	s.Started = true
	e.session = s

	e.record = &entity.SessionRecord{
		Id:              uuid.New(),
		SessionId:       s.Id,
		Group:           s.Group,
		Style:           string(s.Style),
		Pack:            string(s.Pack),
		Difficulty:      string(s.Difficulty),
		Consented:       s.Consented,
		Accent:          s.Accent,
		Notes:           s.Notes,
		MaxQuestions:    s.MaxQuestions,
		DurationSeconds: int(s.Duration / time.Second),
		StartedAt:       s.StartedAt,
	}
	e.rec.RecordSession(e.record)

	e.log.Info(logModule, "session started", map[string]interface{}{
		"session_id": s.Id.String(),
		"style":      string(s.Style),
		"pack":       string(s.Pack),
		"group":      s.Group,
	})

	e.sendJSON(dto.SessionStartedMessage{
		Type:            constant.MsgSessionStarted,
		SessionId:       s.Id,
		Style:           string(s.Style),
		Pack:            string(s.Pack),
		Difficulty:      string(s.Difficulty),
		MaxQuestions:    s.MaxQuestions,
		DurationSeconds: int(s.Duration / time.Second),
	})
	e.askQuestion(ctx)
}

// handleSwitchStyle changes the persona mid-interview and re-asks under the
// new tone. An unknown style is ignored entirely.
func (e *Engine) handleSwitchStyle(ctx context.Context, raw []byte) {
	var req dto.SwitchStyleRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		e.sendError("invalid switch_style payload")
		return
	}
	style, ok := constant.ParseStyle(req.Style)
	if !ok {
		return
	}
	if e.session.Ended {
		return
	}

	e.session.Style = style
	e.sendJSON(dto.StyleSwitchedMessage{Type: constant.MsgStyleSwitched, Style: string(style)})

	if reason, end := e.session.ShouldEnd(e.now()); end {
		e.endSession(reason)
		return
	}
	e.askQuestion(ctx)
}

func (e *Engine) handleAnswer(ctx context.Context, raw []byte) {
	var req dto.UserAnswerRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		e.sendError("invalid user_answer payload")
		return
	}
	if e.session.Ended {
		return
	}

	s := &e.session
	asked := s.LastQuestion
	if asked == "" {
		asked = catalog.Question(s.Pack, s.Difficulty, s.Style, s.Turn)
	}

	primary := !s.AwaitingFollowUp
	if primary {
		s.Turn++
	}
	s.AwaitingFollowUp = false
	s.LastWasFollowUp = !primary

	var metrics *heuristics.DeliveryMetrics
	if req.Metrics != nil {
		metrics = &heuristics.DeliveryMetrics{
			SpeakingRate: req.Metrics.SpeakingRate,
			PauseRatio:   req.Metrics.PauseRatio,
			Gaze:         req.Metrics.Gaze,
			Fillers:      req.Metrics.Fillers,
		}
	}

	nonAnswer := heuristics.IsNonAnswer(req.Answer)
	s.LastNonAnswer = nonAnswer

	record := &entity.AnswerRecord{
		Id:         uuid.New(),
		SessionId:  s.Id,
		Group:      s.Group,
		Question:   asked,
		Answer:     req.Answer,
		Turn:       s.Turn,
		IsFollowUp: !primary,
		NonAnswer:  nonAnswer,
		CreatedAt:  e.now(),
	}
	if metrics != nil {
		record.SpeakingRate = metrics.SpeakingRate
		record.PauseRatio = metrics.PauseRatio
		record.Gaze = metrics.Gaze
		record.Fillers = metrics.Fillers
	}
	e.rec.RecordAnswer(record)
	s.RememberExchange(asked, req.Answer)

	followUp, tips := e.react(ctx, asked, req.Answer, metrics, primary, nonAnswer)
	if len(tips) > 0 {
		items := make([]dto.TipItem, len(tips))
		for i, tip := range tips {
			items[i] = dto.TipItem{Summary: tip.Summary, Detail: tip.Detail}
		}
		e.sendJSON(dto.TipsMessage{Type: constant.MsgTips, Turn: s.Turn, Items: items})
	}

	if reason, end := s.ShouldEnd(e.now()); end {
		e.endSession(reason)
		return
	}

	if primary && followUp != "" {
		s.AwaitingFollowUp = true
		e.sendFollowUp(followUp)
		return
	}
	e.askQuestion(ctx)
}

// react decides the follow-up and tips for one answer. A non-answer skips the
// model entirely: a fixed redirect plus recovery tips. Answers to follow-ups
// only earn tips, never a chained second follow-up.
func (e *Engine) react(ctx context.Context, question, answer string, metrics *heuristics.DeliveryMetrics, primary, nonAnswer bool) (string, []heuristics.Tip) {
	s := &e.session

	if nonAnswer {
		followUp := ""
		if primary {
			followUp = catalog.RedirectFollowUp(s.Pack, e.rng)
		}
		return followUp, heuristics.CoachingTips(answer, metrics, s.Style)
	}

	if !primary {
		return "", heuristics.CoachingTips(answer, metrics, s.Style)
	}

	result, ok := e.gen.Coaching(ctx, gateway.CoachingRequest{
		Style:      s.Style,
		Pack:       s.Pack,
		Difficulty: s.Difficulty,
		Turn:       s.Turn,
		Question:   question,
		Answer:     answer,
		Metrics:    metrics,
	})
	if ok {
		tips := make([]heuristics.Tip, len(result.Tips))
		for i, tip := range result.Tips {
			tips[i] = heuristics.Tip{Summary: tip.Summary, Detail: tip.Detail}
		}
		return result.FollowUp, tips
	}

	intent := heuristics.FollowUpIntent(answer, metrics)
	followUp := catalog.FollowUpPhrase(intent, s.Style, e.rng)
	e.log.Info(logModule, "coaching fallback", map[string]interface{}{
		"session_id": s.Id.String(),
		"turn":       s.Turn,
		"intent":     string(intent),
	})
	return followUp, heuristics.CoachingTips(answer, metrics, s.Style)
}

func (e *Engine) handleClarification(ctx context.Context, raw []byte) {
	var req dto.UserClarificationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		e.sendError("invalid user_clarification payload")
		return
	}
	if e.session.Ended {
		return
	}

	s := &e.session
	if s.LastQuestion == "" {
		e.sendError("no question has been asked yet")
		return
	}

	body := catalog.Truncate(strings.TrimSpace(req.Body()), constant.MaxClarificationInputLen)

	var message string
	source := constant.ClarificationFallback
	switch {
	case heuristics.IsAnswerSeeking(body):
		message = catalog.Refusal(s.Style)
		source = constant.ClarificationGuardrail
	default:
		if reply, ok := e.gen.Clarification(ctx, gateway.ClarificationRequest{
			Style:         s.Style,
			Pack:          s.Pack,
			Difficulty:    s.Difficulty,
			Question:      s.LastQuestion,
			Clarification: body,
		}); ok {
			message = catalog.Truncate(reply, constant.MaxClarificationMessageLen)
			source = constant.ClarificationLLM
		} else {
			message = catalog.ClarificationFallback(s.Pack, s.Difficulty, body, s.LastQuestion)
		}
	}

	e.sendJSON(dto.ClarificationMessage{
		Type:    constant.MsgClarification,
		Message: message,
		Source:  string(source),
	})
}

func (e *Engine) handleCheckin(raw []byte) {
	var req dto.CheckinMessage
	if err := json.Unmarshal(raw, &req); err != nil {
		e.sendError("invalid checkin payload")
		return
	}

	group := strings.TrimSpace(req.Group)
	if group == "" {
		group = e.session.Group
	}
	e.rec.RecordCheckin(&entity.CheckinRecord{
		Id:         uuid.New(),
		SessionId:  e.session.Id,
		Group:      group,
		Day:        req.Day,
		Confidence: req.Confidence,
		Stress:     req.Stress,
		Notes:      req.Notes,
		CreatedAt:  e.now(),
	})
	e.sendJSON(dto.CheckinLoggedMessage{Type: constant.MsgCheckinLogged})
}

func (e *Engine) handleTelemetry(raw []byte) {
	var req dto.TelemetryMessage
	if err := json.Unmarshal(raw, &req); err != nil {
		e.sendError("invalid telemetry payload")
		return
	}

	event := strings.TrimSpace(req.Event)
	if event == "" {
		event = "unknown"
	}
	payload := req.Data
	if req.LatencyMs != nil {
		if payload == nil {
			payload = map[string]interface{}{}
		}
		payload["latency_ms"] = *req.LatencyMs
	}
	e.rec.RecordTelemetry(&entity.TelemetryRecord{
		Id:        uuid.New(),
		SessionId: e.session.Id,
		Group:     e.session.Group,
		Event:     event,
		Payload:   payload,
		CreatedAt: e.now(),
	})
}

// askQuestion emits the next main question: the custom queue first, then the
// model, then the deterministic catalog.
func (e *Engine) askQuestion(ctx context.Context) {
	s := &e.session

	var question string
	source := constant.SourceFallback
	if q := s.NextCustomQuestion(); q != "" {
		question = q
		source = constant.SourceCustom
	} else if q, ok := e.gen.NextQuestion(ctx, gateway.QuestionRequest{
		Style:        s.Style,
		Pack:         s.Pack,
		Difficulty:   s.Difficulty,
		Turn:         s.Turn,
		LastQuestion: s.LastQuestion,
		History:      s.History,
	}); ok {
		question = q
		source = constant.SourceLLM
	} else {
		question = catalog.Question(s.Pack, s.Difficulty, s.Style, s.Turn)
	}

	preface := ""
	if len(s.History) > 0 {
		if s.LastNonAnswer {
			preface = catalog.RedirectPreface(s.LastWasFollowUp)
		} else {
			preface = catalog.AckPreface(s.Style, e.rng)
		}
		if catalog.HasAckOpening(question) {
			preface = ""
		}
	}

	s.LastQuestion = question
	e.rec.RecordTelemetry(&entity.TelemetryRecord{
		Id:        uuid.New(),
		SessionId: s.Id,
		Group:     s.Group,
		Event:     constant.TelemetryEventQuestion,
		Payload: map[string]interface{}{
			"turn":     s.Turn,
			"source":   string(source),
			"prefaced": preface != "",
		},
		CreatedAt: e.now(),
	})
	e.sendJSON(dto.QuestionMessage{
		Type:     constant.MsgQuestion,
		Turn:     s.Turn,
		Question: question,
		Style:    string(s.Style),
		Source:   string(source),
		Preface:  preface,
	})
}

// sendFollowUp asks the follow-up as a question frame and echoes it as a
// spoken aside.
func (e *Engine) sendFollowUp(followUp string) {
	s := &e.session
	s.LastQuestion = followUp
	e.rec.RecordTelemetry(&entity.TelemetryRecord{
		Id:        uuid.New(),
		SessionId: s.Id,
		Group:     s.Group,
		Event:     constant.TelemetryEventQuestion,
		Payload: map[string]interface{}{
			"turn":   s.Turn,
			"source": string(constant.SourceFollowUp),
		},
		CreatedAt: e.now(),
	})
	e.sendJSON(dto.QuestionMessage{
		Type:     constant.MsgQuestion,
		Turn:     s.Turn,
		Question: followUp,
		Style:    string(s.Style),
		Source:   string(constant.SourceFollowUp),
	})
	e.sendJSON(dto.InterviewerMessage{Type: constant.MsgInterviewerMessage, Message: followUp})
}

// endSession is idempotent: the first call emits the terminal message,
// finalizes the session record, and closes the connection.
func (e *Engine) endSession(reason constant.EndReason) {
	s := &e.session
	if s.Ended {
		return
	}
	s.Ended = true

	e.sendJSON(dto.SessionEndedMessage{
		Type:    constant.MsgSessionEnded,
		Reason:  string(reason),
		Message: catalog.Closing(reason, s.Style),
	})

	if e.record != nil {
		endedAt := e.now()
		e.record.EndedAt = &endedAt
		e.record.EndReason = string(reason)
		e.record.QuestionsAsked = s.Turn
		e.rec.RecordSession(e.record)
	}
	e.rec.RecordTelemetry(&entity.TelemetryRecord{
		Id:        uuid.New(),
		SessionId: s.Id,
		Group:     s.Group,
		Event:     constant.TelemetryEventSessionEnded,
		Payload: map[string]interface{}{
			"reason": string(reason),
			"turn":   s.Turn,
		},
		CreatedAt: e.now(),
	})

	e.log.Info(logModule, "session ended", map[string]interface{}{
		"session_id": s.Id.String(),
		"reason":     string(reason),
		"turn":       s.Turn,
	})

	if err := e.send.Close(); err != nil {
		e.log.Debug(logModule, "close after session end", map[string]interface{}{"error": err.Error()})
	}
}

func (e *Engine) sendJSON(message interface{}) {
	if err := e.send.Send(message); err != nil {
		e.log.Warn(logModule, "failed to push message", map[string]interface{}{
			"session_id": e.session.Id.String(),
			"error":      err.Error(),
		})
	}
}

func (e *Engine) sendError(message string) {
	e.sendJSON(dto.ErrorMessage{Type: constant.MsgError, Message: message})
}
