package heuristics

import (
	"sort"
	"strings"

	"ai-interviewer-be/internal/constant"
)

// Coaching-tip synthesis. Independent checks produce prioritized candidates;
// the top two distinct titles survive, tone-prefixed per style.

const (
	shortContentRunes = 80
	denseContentRunes = 1100
	quantifyMinRunes  = 80

	fastRateWPM     = 175
	veryFastRateWPM = 195
	slowRateWPM     = 105
	slowRateMinLen  = 120

	pauseHighRatio     = 0.18
	pauseVeryHighRatio = 0.26
	pauseLowRatio      = 0.05

	gazeLowPct     = 60
	gazeVeryLowPct = 45

	maxTips = 2
)

type candidate struct {
	priority int
	tip      Tip
}

var tonePrefixes = map[constant.Style]string{
	constant.StyleSupportive: "Encouraging: ",
	constant.StyleNeutral:    "",
	constant.StyleCold:       "Direct: ",
}

var nonAnswerTips = []Tip{
	{
		Summary: "Turn 'I don't know' into a starting point",
		Detail:  "Say what you do know and reason out loud from there; interviewers reward a visible thought process over a blank.",
	},
	{
		Summary: "Buy thinking time out loud",
		Detail:  "Restate the question in your own words while your ideas line up; silence reads worse than a slow start.",
	},
}

// CoachingTips builds at most two tips for an answer. A non-answer always
// yields the two fixed recovery tips.
func CoachingTips(answer string, m *DeliveryMetrics, style constant.Style) []Tip {
	if IsNonAnswer(answer) {
		return applyTone(nonAnswerTips, style)
	}

	trimmed := strings.TrimSpace(answer)
	runes := len([]rune(trimmed))
	hasDigits := digitRe.MatchString(trimmed)

	var candidates []candidate
	add := func(priority int, summary, detail string) {
		candidates = append(candidates, candidate{priority, Tip{Summary: summary, Detail: detail}})
	}

	if runes < shortContentRunes {
		add(3, "Add one concrete detail", "Include a metric or a decision so the interviewer can see impact.")
	} else if !hasDigits {
		add(2, "Quantify your impact", "Attach one number to the story, a latency, a percentage, a headcount; it anchors everything else.")
	}
	if runes > denseContentRunes {
		add(2, "Trim to the core decision", "Cut the scene-setting; lead with the decision you made and what it changed.")
	}

	if m != nil && m.SpeakingRate != nil {
		switch rate := *m.SpeakingRate; {
		case rate > veryFastRateWPM:
			add(4, "Ease your pace", "You are sprinting; land one sentence fully before starting the next.")
		case rate > fastRateWPM:
			add(2, "Ease your pace", "Slightly fast; a short pause after your key point gives it weight.")
		case rate < slowRateWPM && runes >= slowRateMinLen:
			add(2, "Project more energy", "The delivery drags; tighten sentences and push toward the result sooner.")
		}
	}

	if m != nil && m.PauseRatio != nil {
		switch ratio := *m.PauseRatio; {
		case ratio > pauseVeryHighRatio:
			add(4, "Shorten your pauses", "Long gaps between thoughts read as uncertainty; bridge them with a connecting phrase.")
		case ratio > pauseHighRatio:
			add(2, "Shorten your pauses", "A few gaps ran long; finish the sentence before you reach for the next idea.")
		case ratio < pauseLowRatio && m.SpeakingRate != nil && *m.SpeakingRate > fastRateWPM:
			add(2, "Leave room to breathe", "No pauses at all makes it hard to follow; give the interviewer one beat per point.")
		}
	} else if strings.Contains(answer, "...") || strings.Contains(answer, "  ") {
		// textual pause heuristic, only when no measured pause ratio exists
		add(1, "Smooth your pacing", "Finish sentences before pausing; keep eye contact for the last word.")
	}

	if m != nil && m.Gaze != nil {
		switch gaze := *m.Gaze; {
		case gaze < gazeVeryLowPct:
			add(4, "Come back to the camera", "You looked away most of the time; pick a spot near the lens and return to it after each glance down.")
		case gaze < gazeLowPct:
			add(2, "Come back to the camera", "Gaze wandered; deliver the last sentence of each answer straight to the lens.")
		}
	}

	if m != nil && m.Fillers != nil && *m.Fillers > 1 {
		priority := 2
		if *m.Fillers > 3 {
			priority = 4
		}
		add(priority, "Trim fillers", "Take a breath before answering to reduce the uh/um clusters.")
	}

	if len(candidates) == 0 {
		add(1, "Good structure", "Keep using concise, past-tense statements to anchor the story.")
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority > candidates[j].priority
	})

	seen := make(map[string]struct{}, maxTips)
	tips := make([]Tip, 0, maxTips)
	for _, c := range candidates {
		if _, dup := seen[c.tip.Summary]; dup {
			continue
		}
		seen[c.tip.Summary] = struct{}{}
		tips = append(tips, c.tip)
		if len(tips) == maxTips {
			break
		}
	}
	return applyTone(tips, style)
}

func applyTone(tips []Tip, style constant.Style) []Tip {
	prefix := tonePrefixes[style]
	out := make([]Tip, len(tips))
	for i, tip := range tips {
		out[i] = Tip{Summary: tip.Summary, Detail: prefix + tip.Detail}
	}
	return out
}
