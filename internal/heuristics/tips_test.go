package heuristics

import (
	"strings"
	"testing"

	"ai-interviewer-be/internal/constant"
)

func TestCoachingTipsNonAnswer(t *testing.T) {
	tips := CoachingTips("idk", nil, constant.StyleCold)
	if len(tips) != 2 {
		t.Fatalf("expected exactly 2 tips for a non-answer, got %d", len(tips))
	}
	for _, tip := range tips {
		if !strings.HasPrefix(tip.Detail, "Direct: ") {
			t.Errorf("cold tip missing tone prefix: %q", tip.Detail)
		}
	}
}

func TestCoachingTipsPriorityAndCap(t *testing.T) {
	// Fast speech (prio 4) and heavy fillers (prio 4) must beat the
	// short-content tip (prio 3); at most two survive.
	m := &DeliveryMetrics{
		SpeakingRate: f64(205),
		Fillers:      iptr(5),
	}
	tips := CoachingTips("Quick answer about the migration.", m, constant.StyleNeutral)
	if len(tips) != 2 {
		t.Fatalf("expected 2 tips, got %d", len(tips))
	}
	got := []string{tips[0].Summary, tips[1].Summary}
	want := map[string]bool{"Ease your pace": true, "Trim fillers": true}
	for _, summary := range got {
		if !want[summary] {
			t.Errorf("unexpected tip %q, want high-priority delivery tips", summary)
		}
	}
}

func TestCoachingTipsNeutralFallback(t *testing.T) {
	answer := "I migrated the payment service to the new queue over 3 sprints and measured a 40% drop in retries, " +
		"then wrote the runbook so the rollout could be repeated by the next team without my help at any step."
	tips := CoachingTips(answer, nil, constant.StyleNeutral)
	if len(tips) != 1 {
		t.Fatalf("expected single fallback tip, got %d", len(tips))
	}
	if tips[0].Summary != "Good structure" {
		t.Errorf("fallback tip = %q, want %q", tips[0].Summary, "Good structure")
	}
	if tips[0].Detail != "Keep using concise, past-tense statements to anchor the story." {
		t.Errorf("neutral tone must not add a prefix, got %q", tips[0].Detail)
	}
}

func TestCoachingTipsTextualPauseOnlyWithoutMetric(t *testing.T) {
	answer := "So the incident started... and then we failed over to the replica region after the primary locked up " +
		"during the 14:00 deploy window, which is why 3 dashboards went dark at once for everyone watching."

	tips := CoachingTips(answer, nil, constant.StyleSupportive)
	found := false
	for _, tip := range tips {
		if tip.Summary == "Smooth your pacing" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected textual pause tip without numeric pause ratio, got %+v", tips)
	}

	// With a healthy measured pause ratio the textual heuristic is skipped.
	m := &DeliveryMetrics{PauseRatio: f64(0.10)}
	tips = CoachingTips(answer, m, constant.StyleSupportive)
	for _, tip := range tips {
		if tip.Summary == "Smooth your pacing" {
			t.Errorf("textual pause tip must not fire when pause ratio is measured")
		}
	}
}

func TestCoachingTipsGazeEscalation(t *testing.T) {
	answer := "I rebuilt the reporting stack and the 5 slowest queries dropped from 30 seconds to under 2, which " +
		"unblocked the finance close and meant nobody had to babysit the Monday export anymore at all."

	m := &DeliveryMetrics{Gaze: f64(40)}
	tips := CoachingTips(answer, m, constant.StyleNeutral)
	if len(tips) == 0 || tips[0].Summary != "Come back to the camera" {
		t.Fatalf("very low gaze should lead, got %+v", tips)
	}
}
