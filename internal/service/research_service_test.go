package service

import (
	"context"
	"testing"
	"time"

	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/entity"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestMetricsSummaryAggregatesCheckinsAndSttTelemetry(t *testing.T) {
	ended := time.Now()
	uow := &stubUnitOfWork{
		sessions: &stubSessionRepo{byGroup: map[string][]*entity.SessionRecord{
			"control": {
				{Group: "control", QuestionsAsked: 4, EndedAt: &ended},
			},
			"treatment": {
				{Group: "treatment", QuestionsAsked: 6},
			},
		}},
		answers: &stubAnswerRepo{byGroup: map[string][]*entity.AnswerRecord{
			"control": {
				{Answer: "short", NonAnswer: true},
				{Answer: "a longer substantive answer", SpeakingRate: floatPtr(150), Fillers: intPtr(2)},
			},
			"treatment": {
				{Answer: "treatment answer", SpeakingRate: floatPtr(170), Fillers: intPtr(4)},
			},
		}},
		checkins: &stubCheckinRepo{byGroup: map[string][]*entity.CheckinRecord{
			"control": {
				{Confidence: 4, Stress: 6},
			},
			"treatment": {
				{Confidence: 6, Stress: 4},
				{Confidence: 8, Stress: 2},
			},
		}},
		telemetry: &stubTelemetryRepo{byGroupAndEvent: map[string][]*entity.TelemetryRecord{
			"control/" + constant.TelemetryEventSTT: {
				{Event: constant.TelemetryEventSTT, Payload: map[string]interface{}{"latency_ms": 100.0}},
			},
			"treatment/" + constant.TelemetryEventSTT: {
				{Event: constant.TelemetryEventSTT, Payload: map[string]interface{}{"latency_ms": 200.0}},
				{Event: constant.TelemetryEventSTT, Payload: map[string]interface{}{"latency_ms": 400.0}},
			},
		}},
	}
	svc := NewResearchService(&stubFactory{uow: uow}, nopServiceLogger{})

	summary, err := svc.MetricsSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	control := summary.Groups["control"]
	if control.Checkins != 1 || control.SttEvents != 1 {
		t.Fatalf("control counts = %+v", control)
	}
	if control.AvgConfidence == nil || *control.AvgConfidence != 4 {
		t.Fatalf("control avg confidence = %v", control.AvgConfidence)
	}
	if control.AvgSttLatencyMs == nil || *control.AvgSttLatencyMs != 100 {
		t.Fatalf("control avg stt latency = %v", control.AvgSttLatencyMs)
	}
	if control.CompletedSessions != 1 || control.NonAnswerRate != 0.5 {
		t.Fatalf("control = %+v", control)
	}

	treatment := summary.Groups["treatment"]
	if treatment.Checkins != 2 {
		t.Fatalf("treatment checkins = %d", treatment.Checkins)
	}
	if treatment.AvgConfidence == nil || *treatment.AvgConfidence != 7 {
		t.Fatalf("treatment avg confidence = %v", treatment.AvgConfidence)
	}
	if treatment.AvgStress == nil || *treatment.AvgStress != 3 {
		t.Fatalf("treatment avg stress = %v", treatment.AvgStress)
	}
	if treatment.AvgSttLatencyMs == nil || *treatment.AvgSttLatencyMs != 300 {
		t.Fatalf("treatment avg stt latency = %v", treatment.AvgSttLatencyMs)
	}

	deltas := summary.Deltas
	if deltas == nil {
		t.Fatal("deltas missing")
	}
	if deltas.AvgConfidence == nil || *deltas.AvgConfidence != 3 {
		t.Fatalf("confidence delta = %v", deltas.AvgConfidence)
	}
	if deltas.AvgStress == nil || *deltas.AvgStress != -3 {
		t.Fatalf("stress delta = %v", deltas.AvgStress)
	}
	if deltas.AvgSttLatencyMs == nil || *deltas.AvgSttLatencyMs != 200 {
		t.Fatalf("stt latency delta = %v", deltas.AvgSttLatencyMs)
	}
	if deltas.AvgSpeakingRate == nil || *deltas.AvgSpeakingRate != 20 {
		t.Fatalf("speaking rate delta = %v", deltas.AvgSpeakingRate)
	}
	if deltas.AvgFillers == nil || *deltas.AvgFillers != 2 {
		t.Fatalf("fillers delta = %v", deltas.AvgFillers)
	}
}

func TestMetricsSummaryEmptyGroupsReportNilMeans(t *testing.T) {
	uow := &stubUnitOfWork{
		sessions:  &stubSessionRepo{},
		answers:   &stubAnswerRepo{},
		checkins:  &stubCheckinRepo{},
		telemetry: &stubTelemetryRepo{},
	}
	svc := NewResearchService(&stubFactory{uow: uow}, nopServiceLogger{})

	summary, err := svc.MetricsSummary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, group := range []string{"control", "treatment"} {
		m, ok := summary.Groups[group]
		if !ok {
			t.Fatalf("group %q missing from summary", group)
		}
		if m.Sessions != 0 || m.AvgConfidence != nil || m.AvgSttLatencyMs != nil {
			t.Fatalf("%s = %+v, want empty aggregates", group, m)
		}
	}
	if summary.Deltas == nil || summary.Deltas.AvgConfidence != nil {
		t.Fatalf("deltas = %+v", summary.Deltas)
	}
}
