package service

import (
	"context"
	"errors"
	"time"

	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/pkg/logger"
	"ai-interviewer-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// IResearchService serves the study-facing REST surface: synchronous
// check-ins, per-session export, and the control/treatment summary.
type IResearchService interface {
	LogCheckin(ctx context.Context, req *dto.CreateCheckinRequest) (*dto.CheckinResponse, error)
	ExportSession(ctx context.Context, sessionId uuid.UUID) (*dto.SessionExportResponse, error)
	MetricsSummary(ctx context.Context) (*dto.MetricsSummaryResponse, error)
}

type researchService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewResearchService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IResearchService {
	return &researchService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *researchService) LogCheckin(ctx context.Context, req *dto.CreateCheckinRequest) (*dto.CheckinResponse, error) {
	group := req.Group
	if group == "" {
		group = constant.DefaultGroup
	}

	record := &entity.CheckinRecord{
		Id:         uuid.New(),
		SessionId:  req.SessionId,
		Group:      group,
		Day:        req.Day,
		Confidence: req.Confidence,
		Stress:     req.Stress,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CheckinRecordRepository().Create(ctx, record); err != nil {
		return nil, err
	}
	return checkinToResponse(record), nil
}

func (s *researchService) ExportSession(ctx context.Context, sessionId uuid.UUID) (*dto.SessionExportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRecordRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	answers, err := uow.AnswerRecordRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	checkins, err := uow.CheckinRecordRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	telemetry, err := uow.TelemetryRecordRepository().FindBySessionId(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	response := &dto.SessionExportResponse{
		Session: &dto.SessionExport{
			SessionId:       session.SessionId,
			Group:           session.Group,
			Style:           session.Style,
			Pack:            session.Pack,
			Difficulty:      session.Difficulty,
			Consented:       session.Consented,
			Accent:          session.Accent,
			Notes:           session.Notes,
			MaxQuestions:    session.MaxQuestions,
			DurationSeconds: session.DurationSeconds,
			QuestionsAsked:  session.QuestionsAsked,
			EndReason:       session.EndReason,
			StartedAt:       session.StartedAt,
			EndedAt:         session.EndedAt,
		},
		Answers:   make([]dto.AnswerExport, 0, len(answers)),
		Checkins:  make([]dto.CheckinResponse, 0, len(checkins)),
		Telemetry: make([]dto.TelemetryExport, 0, len(telemetry)),
	}
	for _, a := range answers {
		response.Answers = append(response.Answers, dto.AnswerExport{
			Turn:         a.Turn,
			Question:     a.Question,
			Answer:       a.Answer,
			IsFollowUp:   a.IsFollowUp,
			NonAnswer:    a.NonAnswer,
			SpeakingRate: a.SpeakingRate,
			PauseRatio:   a.PauseRatio,
			Gaze:         a.Gaze,
			Fillers:      a.Fillers,
			CreatedAt:    a.CreatedAt,
		})
	}
	for _, c := range checkins {
		response.Checkins = append(response.Checkins, *checkinToResponse(c))
	}
	for _, t := range telemetry {
		response.Telemetry = append(response.Telemetry, dto.TelemetryExport{
			Event:     t.Event,
			Payload:   t.Payload,
			CreatedAt: t.CreatedAt,
		})
	}
	return response, nil
}

// The summary reports the two study arms. Sessions recorded under any other
// label are reachable through the per-session export but do not enter the
// control/treatment comparison.
var studyArms = []string{"control", "treatment"}

func (s *researchService) MetricsSummary(ctx context.Context) (*dto.MetricsSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	response := &dto.MetricsSummaryResponse{Groups: make(map[string]dto.GroupMetrics, len(studyArms))}
	for _, group := range studyArms {
		acc := &groupAccumulator{}

		sessions, err := uow.SessionRecordRepository().FindByGroup(ctx, group)
		if err != nil {
			return nil, err
		}
		for _, session := range sessions {
			acc.sessions++
			if session.EndedAt != nil {
				acc.completed++
			}
			acc.questionsAsked += session.QuestionsAsked
		}

		answers, err := uow.AnswerRecordRepository().FindByGroup(ctx, group)
		if err != nil {
			return nil, err
		}
		for _, a := range answers {
			acc.answers++
			acc.answerChars += len([]rune(a.Answer))
			if a.NonAnswer {
				acc.nonAnswers++
			}
			acc.speakingRate.add(a.SpeakingRate)
			acc.pauseRatio.add(a.PauseRatio)
			acc.gaze.add(a.Gaze)
			if a.Fillers != nil {
				f := float64(*a.Fillers)
				acc.fillers.add(&f)
			}
		}

		checkins, err := uow.CheckinRecordRepository().FindByGroup(ctx, group)
		if err != nil {
			return nil, err
		}
		for _, c := range checkins {
			acc.checkins++
			conf := float64(c.Confidence)
			stress := float64(c.Stress)
			acc.confidence.add(&conf)
			acc.stress.add(&stress)
		}

		stt, err := uow.TelemetryRecordRepository().FindByGroupAndEvent(ctx, group, constant.TelemetryEventSTT)
		if err != nil {
			return nil, err
		}
		for _, t := range stt {
			acc.sttEvents++
			if v, ok := t.Payload["latency_ms"].(float64); ok {
				acc.sttLatency.add(&v)
			}
		}

		response.Groups[group] = acc.metrics()
	}

	treatment := response.Groups["treatment"]
	control := response.Groups["control"]
	response.Deltas = &dto.MetricsDeltas{
		AvgAnswerChars:  treatment.AvgAnswerChars - control.AvgAnswerChars,
		NonAnswerRate:   treatment.NonAnswerRate - control.NonAnswerRate,
		AvgSpeakingRate: meanDelta(treatment.AvgSpeakingRate, control.AvgSpeakingRate),
		AvgPauseRatio:   meanDelta(treatment.AvgPauseRatio, control.AvgPauseRatio),
		AvgGaze:         meanDelta(treatment.AvgGaze, control.AvgGaze),
		AvgFillers:      meanDelta(treatment.AvgFillers, control.AvgFillers),
		AvgConfidence:   meanDelta(treatment.AvgConfidence, control.AvgConfidence),
		AvgStress:       meanDelta(treatment.AvgStress, control.AvgStress),
		AvgSttLatencyMs: meanDelta(treatment.AvgSttLatencyMs, control.AvgSttLatencyMs),
	}
	return response, nil
}

// runningMean averages only the values that were actually observed; a group
// with no observations reports nil rather than zero.
type runningMean struct {
	sum float64
	n   int
}

func (m *runningMean) add(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.n++
}

func (m *runningMean) avg() *float64 {
	if m.n == 0 {
		return nil
	}
	avg := m.sum / float64(m.n)
	return &avg
}

func meanDelta(treatment, control *float64) *float64 {
	if treatment == nil || control == nil {
		return nil
	}
	d := *treatment - *control
	return &d
}

type groupAccumulator struct {
	sessions       int
	completed      int
	questionsAsked int
	answers        int
	answerChars    int
	nonAnswers     int
	checkins       int
	sttEvents      int
	speakingRate   runningMean
	pauseRatio     runningMean
	gaze           runningMean
	fillers        runningMean
	confidence     runningMean
	stress         runningMean
	sttLatency     runningMean
}

func (acc *groupAccumulator) metrics() dto.GroupMetrics {
	m := dto.GroupMetrics{
		Sessions:          acc.sessions,
		CompletedSessions: acc.completed,
		Answers:           acc.answers,
		Checkins:          acc.checkins,
		SttEvents:         acc.sttEvents,
		AvgSpeakingRate:   acc.speakingRate.avg(),
		AvgPauseRatio:     acc.pauseRatio.avg(),
		AvgGaze:           acc.gaze.avg(),
		AvgFillers:        acc.fillers.avg(),
		AvgConfidence:     acc.confidence.avg(),
		AvgStress:         acc.stress.avg(),
		AvgSttLatencyMs:   acc.sttLatency.avg(),
	}
	if acc.sessions > 0 {
		m.AvgQuestionsAsked = float64(acc.questionsAsked) / float64(acc.sessions)
	}
	if acc.answers > 0 {
		m.AvgAnswerChars = float64(acc.answerChars) / float64(acc.answers)
		m.NonAnswerRate = float64(acc.nonAnswers) / float64(acc.answers)
	}
	return m
}

func checkinToResponse(record *entity.CheckinRecord) *dto.CheckinResponse {
	return &dto.CheckinResponse{
		Id:         record.Id,
		SessionId:  record.SessionId,
		Group:      record.Group,
		Day:        record.Day,
		Confidence: record.Confidence,
		Stress:     record.Stress,
		Notes:      record.Notes,
		CreatedAt:  record.CreatedAt,
	}
}
