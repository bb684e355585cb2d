package interview

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/gateway"
)

type stubGenerator struct {
	question   string
	questionOK bool
	coaching   gateway.CoachingResult
	coachingOK bool
	clarify    string
	clarifyOK  bool
}

func (g *stubGenerator) NextQuestion(ctx context.Context, req gateway.QuestionRequest) (string, bool) {
	return g.question, g.questionOK
}

func (g *stubGenerator) Coaching(ctx context.Context, req gateway.CoachingRequest) (gateway.CoachingResult, bool) {
	return g.coaching, g.coachingOK
}

func (g *stubGenerator) Clarification(ctx context.Context, req gateway.ClarificationRequest) (string, bool) {
	return g.clarify, g.clarifyOK
}

type captureRecorder struct {
	sessions  []*entity.SessionRecord
	answers   []*entity.AnswerRecord
	checkins  []*entity.CheckinRecord
	telemetry []*entity.TelemetryRecord
}

func (r *captureRecorder) RecordSession(record *entity.SessionRecord) {
	r.sessions = append(r.sessions, record)
}

func (r *captureRecorder) RecordAnswer(record *entity.AnswerRecord) {
	r.answers = append(r.answers, record)
}

func (r *captureRecorder) RecordCheckin(record *entity.CheckinRecord) {
	r.checkins = append(r.checkins, record)
}

func (r *captureRecorder) RecordTelemetry(record *entity.TelemetryRecord) {
	r.telemetry = append(r.telemetry, record)
}

type captureSender struct {
	messages []interface{}
	closed   int
}

func (s *captureSender) Send(message interface{}) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *captureSender) Close() error {
	s.closed++
	return nil
}

func (s *captureSender) questions() []dto.QuestionMessage {
	var out []dto.QuestionMessage
	for _, m := range s.messages {
		if q, ok := m.(dto.QuestionMessage); ok {
			out = append(out, q)
		}
	}
	return out
}

func (s *captureSender) countType(target string) int {
	count := 0
	for _, m := range s.messages {
		raw, _ := json.Marshal(m)
		var env struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(raw, &env) == nil && env.Type == target {
			count++
		}
	}
	return count
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestEngine(gen *stubGenerator) (*Engine, *captureRecorder, *captureSender) {
	rec := &captureRecorder{}
	send := &captureSender{}
	e := NewEngine(gen, rec, send, nopLogger{})
	return e, rec, send
}

func start(t *testing.T, e *Engine, extra string) {
	t.Helper()
	payload := `{"type": "start_session"`
	if extra != "" {
		payload += ", " + extra
	}
	payload += `}`
	e.HandleRaw(context.Background(), []byte(payload))
}

func answer(e *Engine, text string) {
	raw, _ := json.Marshal(map[string]interface{}{"type": "user_answer", "answer": text})
	e.HandleRaw(context.Background(), raw)
}

const substantive = "I led the migration of our payment service to a queue-based design. " +
	"We cut p99 latency by 40 percent and the rollout finished two weeks early because " +
	"I sequenced the traffic shift behind a feature flag and validated each cohort."

func TestPrimaryAnswersAdvanceTurn(t *testing.T) {
	// A tips-only coaching result means no follow-ups interleave.
	gen := &stubGenerator{
		coachingOK: true,
		coaching:   gateway.CoachingResult{Tips: []gateway.Tip{{Summary: "s", Detail: "d"}}},
	}
	e, _, _ := newTestEngine(gen)
	start(t, e, "")

	for i := 0; i < 3; i++ {
		answer(e, substantive)
	}
	if e.session.Turn != 3 {
		t.Fatalf("turn = %d, want 3", e.session.Turn)
	}
}

func TestFollowUpAnswersDoNotAdvanceTurn(t *testing.T) {
	gen := &stubGenerator{
		coachingOK: true,
		coaching:   gateway.CoachingResult{FollowUp: "What was your role in that?"},
	}
	e, _, send := newTestEngine(gen)
	start(t, e, "")

	answer(e, substantive) // primary, schedules follow-up
	if e.session.Turn != 1 {
		t.Fatalf("turn after primary = %d, want 1", e.session.Turn)
	}
	if !e.session.AwaitingFollowUp {
		t.Fatal("expected a pending follow-up")
	}
	answer(e, substantive) // answers the follow-up
	if e.session.Turn != 1 {
		t.Fatalf("turn after follow-up answer = %d, want 1", e.session.Turn)
	}
	if e.session.AwaitingFollowUp {
		t.Fatal("follow-up flag must clear after the follow-up answer")
	}

	questions := send.questions()
	var followUps int
	for _, q := range questions {
		if q.Source == string(constant.SourceFollowUp) {
			followUps++
		}
	}
	if followUps != 1 {
		t.Fatalf("follow-up questions = %d, want 1", followUps)
	}
	if send.countType(constant.MsgInterviewerMessage) != 1 {
		t.Fatalf("interviewer_message echoes = %d, want 1", send.countType(constant.MsgInterviewerMessage))
	}
}

func TestMaxQuestionsEndsSession(t *testing.T) {
	gen := &stubGenerator{
		coachingOK: true,
		coaching:   gateway.CoachingResult{Tips: []gateway.Tip{{Summary: "s", Detail: "d"}}},
	}
	e, _, send := newTestEngine(gen)
	start(t, e, `"maxQuestions": 2`)

	answer(e, substantive)
	if e.Ended() {
		t.Fatal("session ended after the first answer")
	}
	questionsBefore := len(send.questions())

	answer(e, substantive)
	if !e.Ended() {
		t.Fatal("session must end after the second primary answer")
	}
	if got := len(send.questions()); got != questionsBefore {
		t.Fatalf("a question was issued after the budget was spent: %d -> %d", questionsBefore, got)
	}
	if send.countType(constant.MsgSessionEnded) != 1 {
		t.Fatalf("session_ended count = %d, want 1", send.countType(constant.MsgSessionEnded))
	}
	for _, m := range send.messages {
		if ended, ok := m.(dto.SessionEndedMessage); ok {
			if ended.Reason != string(constant.EndMaxQuestions) {
				t.Fatalf("reason = %q, want max_questions", ended.Reason)
			}
			if ended.Message == "" {
				t.Fatal("terminal message must carry a closing line")
			}
		}
	}
	if send.closed != 1 {
		t.Fatalf("close count = %d, want 1", send.closed)
	}

	// Further traffic is ignored after the end.
	answer(e, substantive)
	if send.countType(constant.MsgSessionEnded) != 1 || send.closed != 1 {
		t.Fatal("termination must be idempotent")
	}
}

func TestStopSessionIsIdempotent(t *testing.T) {
	gen := &stubGenerator{}
	e, _, send := newTestEngine(gen)
	start(t, e, "")

	e.HandleRaw(context.Background(), []byte(`{"type": "stop_session"}`))
	e.HandleRaw(context.Background(), []byte(`{"type": "stop_session"}`))

	if send.countType(constant.MsgSessionEnded) != 1 {
		t.Fatalf("session_ended count = %d, want 1", send.countType(constant.MsgSessionEnded))
	}
	if send.closed != 1 {
		t.Fatalf("close count = %d, want 1", send.closed)
	}
}

func TestTimeLimitViaTimeout(t *testing.T) {
	gen := &stubGenerator{}
	e, _, send := newTestEngine(gen)
	start(t, e, `"durationSeconds": 60`)

	if _, ok := e.Deadline(); !ok {
		t.Fatal("expected a read deadline for a timed session")
	}

	e.HandleTimeout()
	if !e.Ended() {
		t.Fatal("timeout must end the session")
	}
	for _, m := range send.messages {
		if ended, ok := m.(dto.SessionEndedMessage); ok {
			if ended.Reason != string(constant.EndTimeLimit) {
				t.Fatalf("reason = %q, want time_limit", ended.Reason)
			}
		}
	}

	e.HandleTimeout()
	if send.countType(constant.MsgSessionEnded) != 1 {
		t.Fatal("a second timeout must not re-terminate")
	}
}

func TestHistoryStaysBounded(t *testing.T) {
	gen := &stubGenerator{
		coachingOK: true,
		coaching:   gateway.CoachingResult{Tips: []gateway.Tip{{Summary: "s", Detail: "d"}}},
	}
	e, _, _ := newTestEngine(gen)
	start(t, e, "")

	for i := 0; i < 6; i++ {
		answer(e, substantive)
	}
	if got := len(e.session.History); got != constant.MaxHistoryPairs {
		t.Fatalf("history length = %d, want %d", got, constant.MaxHistoryPairs)
	}
}

func TestCustomQuestionsServedFirst(t *testing.T) {
	gen := &stubGenerator{
		question:   "From the model?",
		questionOK: true,
		coachingOK: true,
		coaching:   gateway.CoachingResult{Tips: []gateway.Tip{{Summary: "s", Detail: "d"}}},
	}
	e, _, send := newTestEngine(gen)
	start(t, e, `"customQuestions": ["Why Go?", "  ", "Why us?"]`)

	answer(e, substantive)
	answer(e, substantive)

	questions := send.questions()
	if len(questions) < 3 {
		t.Fatalf("expected at least 3 questions, got %d", len(questions))
	}
	if questions[0].Question != "Why Go?" || questions[0].Source != string(constant.SourceCustom) {
		t.Fatalf("first question = %+v, want the custom entry", questions[0])
	}
	if questions[1].Question != "Why us?" || questions[1].Source != string(constant.SourceCustom) {
		t.Fatalf("second question = %+v, want the custom entry", questions[1])
	}
	if questions[2].Source != string(constant.SourceLLM) {
		t.Fatalf("third question source = %q, want llm once the queue drains", questions[2].Source)
	}
}

func TestNonAnswerRedirects(t *testing.T) {
	gen := &stubGenerator{coachingOK: true, coaching: gateway.CoachingResult{FollowUp: "never used"}}
	e, rec, send := newTestEngine(gen)
	start(t, e, "")

	answer(e, "I don't know")

	if e.session.Turn != 1 {
		t.Fatalf("turn = %d, a non-answer still consumes the turn", e.session.Turn)
	}
	if len(rec.answers) != 1 || !rec.answers[0].NonAnswer {
		t.Fatalf("answer record = %+v, want NonAnswer set", rec.answers)
	}

	questions := send.questions()
	last := questions[len(questions)-1]
	if last.Source != string(constant.SourceFollowUp) {
		t.Fatalf("source = %q, want a redirect follow-up", last.Source)
	}
	if last.Question == "never used" {
		t.Fatal("non-answers must not consult the model for coaching")
	}
	if send.countType(constant.MsgTips) != 1 {
		t.Fatalf("tips messages = %d, want the recovery tips", send.countType(constant.MsgTips))
	}
}

func TestInvalidSwitchStyleIsNoOp(t *testing.T) {
	gen := &stubGenerator{}
	e, _, send := newTestEngine(gen)
	start(t, e, `"style": "cold"`)
	before := len(send.messages)

	e.HandleRaw(context.Background(), []byte(`{"type": "switch_style", "style": "sarcastic"}`))

	if e.session.Style != constant.StyleCold {
		t.Fatalf("style = %q, want unchanged cold", e.session.Style)
	}
	if len(send.messages) != before {
		t.Fatal("an invalid style must not produce any output")
	}
}

func TestSwitchStyleAcksAndReasks(t *testing.T) {
	gen := &stubGenerator{}
	e, _, send := newTestEngine(gen)
	start(t, e, "")

	e.HandleRaw(context.Background(), []byte(`{"type": "switch_style", "style": "supportive"}`))

	if e.session.Style != constant.StyleSupportive {
		t.Fatalf("style = %q, want supportive", e.session.Style)
	}
	if send.countType(constant.MsgStyleSwitched) != 1 {
		t.Fatal("expected a style_switched ack")
	}
	questions := send.questions()
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want the opener plus the re-ask", len(questions))
	}
	if questions[1].Style != string(constant.StyleSupportive) {
		t.Fatalf("re-asked style = %q, want supportive", questions[1].Style)
	}
}

func TestPingPong(t *testing.T) {
	gen := &stubGenerator{}
	e, _, send := newTestEngine(gen)

	e.HandleRaw(context.Background(), []byte(`{"type": "ping"}`))
	if send.countType(constant.MsgPong) != 1 {
		t.Fatal("ping must answer with pong")
	}
}

func TestMalformedInputYieldsError(t *testing.T) {
	gen := &stubGenerator{}
	e, _, send := newTestEngine(gen)
	start(t, e, "")
	turn := e.session.Turn

	e.HandleRaw(context.Background(), []byte(`not json at all`))
	e.HandleRaw(context.Background(), []byte(`{"answer": "missing type"}`))
	e.HandleRaw(context.Background(), []byte(`{"type": "mystery"}`))

	if send.countType(constant.MsgError) != 3 {
		t.Fatalf("error messages = %d, want 3", send.countType(constant.MsgError))
	}
	if e.session.Turn != turn || e.Ended() {
		t.Fatal("malformed input must not change session state")
	}
}

func TestClarificationGuardrail(t *testing.T) {
	gen := &stubGenerator{clarifyOK: true, clarify: "model reply"}
	e, _, send := newTestEngine(gen)
	start(t, e, "")

	e.HandleRaw(context.Background(), []byte(`{"type": "user_clarification", "question": "how would you answer this one?"}`))

	var clarifications []dto.ClarificationMessage
	for _, m := range send.messages {
		if c, ok := m.(dto.ClarificationMessage); ok {
			clarifications = append(clarifications, c)
		}
	}
	if len(clarifications) != 1 {
		t.Fatalf("clarifications = %d, want 1", len(clarifications))
	}
	if clarifications[0].Source != string(constant.ClarificationGuardrail) {
		t.Fatalf("source = %q, want guardrail", clarifications[0].Source)
	}
	if clarifications[0].Message == "model reply" {
		t.Fatal("answer-seeking input must never reach the model")
	}
}

func TestClarificationFallsBack(t *testing.T) {
	gen := &stubGenerator{clarifyOK: false}
	e, _, send := newTestEngine(gen)
	start(t, e, "")

	e.HandleRaw(context.Background(), []byte(`{"type": "user_clarification", "clarification": "should I talk about a team project or a solo one?"}`))

	for _, m := range send.messages {
		if c, ok := m.(dto.ClarificationMessage); ok {
			if c.Source != string(constant.ClarificationFallback) {
				t.Fatalf("source = %q, want fallback", c.Source)
			}
			if c.Message == "" {
				t.Fatal("fallback clarification must not be empty")
			}
			return
		}
	}
	t.Fatal("no clarification message sent")
}

func TestCheckinLogged(t *testing.T) {
	gen := &stubGenerator{}
	e, rec, send := newTestEngine(gen)
	start(t, e, "")

	e.HandleRaw(context.Background(), []byte(`{"type": "checkin", "day": 3, "confidence": 7, "stress": 4}`))

	if len(rec.checkins) != 1 {
		t.Fatalf("checkins recorded = %d, want 1", len(rec.checkins))
	}
	if rec.checkins[0].Confidence != 7 || rec.checkins[0].Stress != 4 {
		t.Fatalf("checkin = %+v", rec.checkins[0])
	}
	if rec.checkins[0].Group != constant.DefaultGroup {
		t.Fatalf("group = %q, want the session default", rec.checkins[0].Group)
	}
	if send.countType(constant.MsgCheckinLogged) != 1 {
		t.Fatal("expected a checkin_logged ack")
	}
}

func TestSessionEndFinalizesRecord(t *testing.T) {
	gen := &stubGenerator{
		coachingOK: true,
		coaching:   gateway.CoachingResult{Tips: []gateway.Tip{{Summary: "s", Detail: "d"}}},
	}
	e, rec, _ := newTestEngine(gen)
	started := time.Now()
	start(t, e, `"maxQuestions": 1, "group": "control"`)

	answer(e, substantive)

	if len(rec.sessions) != 2 {
		t.Fatalf("session records = %d, want the opening write plus the final write", len(rec.sessions))
	}
	final := rec.sessions[1]
	if final.EndReason != string(constant.EndMaxQuestions) {
		t.Fatalf("end reason = %q", final.EndReason)
	}
	if final.EndedAt == nil || final.EndedAt.Before(started) {
		t.Fatalf("ended at = %v", final.EndedAt)
	}
	if final.QuestionsAsked != 1 || final.Group != "control" {
		t.Fatalf("final record = %+v", final)
	}
}

func TestStartFieldsReadFromTopLevel(t *testing.T) {
	gen := &stubGenerator{questionOK: true, question: "First question?"}
	e, rec, _ := newTestEngine(gen)

	raw := `{"type": "start_session", "style": "cold", "group": "treatment", "maxQuestions": 4}`
	e.HandleRaw(context.Background(), []byte(raw))

	if len(rec.sessions) != 1 {
		t.Fatalf("session records = %d", len(rec.sessions))
	}
	opened := rec.sessions[0]
	if opened.Style != string(constant.StyleCold) {
		t.Fatalf("style = %q", opened.Style)
	}
	if opened.MaxQuestions != 4 {
		t.Fatalf("maxQuestions = %d, want 4", opened.MaxQuestions)
	}
	if opened.Group != "treatment" {
		t.Fatalf("group = %q", opened.Group)
	}
}

func TestRestartMintsFreshSessionId(t *testing.T) {
	gen := &stubGenerator{questionOK: true, question: "First question?"}
	e, rec, _ := newTestEngine(gen)

	start(t, e, `"group": "control"`)
	first := e.SessionId()

	start(t, e, `"group": "treatment"`)
	second := e.SessionId()

	if first == second {
		t.Fatalf("restart reused session id %s", first)
	}
	if len(rec.sessions) != 2 {
		t.Fatalf("session records = %d, want one per start", len(rec.sessions))
	}
	if rec.sessions[0].SessionId == rec.sessions[1].SessionId {
		t.Fatal("both runs persisted under the same session id")
	}
	if rec.sessions[0].Group != "control" || rec.sessions[1].Group != "treatment" {
		t.Fatalf("persisted groups = %q, %q", rec.sessions[0].Group, rec.sessions[1].Group)
	}
}
