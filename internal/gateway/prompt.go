package gateway

import (
	"fmt"
	"strings"

	"ai-interviewer-be/internal/constant"
)

// User-prompt builders. History is capped to the most recent pairs so prompts
// stay bounded regardless of session length.

func historyBlock(history []HistoryPair) string {
	if len(history) > constant.HistoryInPrompt {
		history = history[len(history)-constant.HistoryInPrompt:]
	}
	if len(history) == 0 {
		return "None yet"
	}
	lines := make([]string, 0, len(history)*2)
	for _, pair := range history {
		lines = append(lines, "Q: "+pair.Question, "A: "+pair.Answer)
	}
	return strings.Join(lines, "\n")
}

func buildQuestionPrompt(req QuestionRequest) string {
	previous := req.LastQuestion
	if previous == "" {
		previous = "None"
	}
	return fmt.Sprintf(
		"Style: %s\nPack: %s\nDifficulty: %s\nTurn index (0-based): %d\nPrevious question: %s\n"+
			"Recent Q/A (most recent last):\n%s\n"+
			"Give the next single interview question in JSON only. Ask something that logically follows the last answer; avoid repeats.",
		req.Style, req.Pack, req.Difficulty, req.Turn, previous, historyBlock(req.History),
	)
}

func buildCoachingPrompt(req CoachingRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Style: %s\nPack: %s\nDifficulty: %s\nTurn: %d\nQuestion: %s\nUser answer: %s\n",
		req.Style, req.Pack, req.Difficulty, req.Turn, req.Question, req.Answer)
	if m := req.Metrics; m != nil {
		b.WriteString("Delivery metrics:")
		if m.SpeakingRate != nil {
			fmt.Fprintf(&b, " speaking_rate=%.0fwpm", *m.SpeakingRate)
		}
		if m.PauseRatio != nil {
			fmt.Fprintf(&b, " pause_ratio=%.2f", *m.PauseRatio)
		}
		if m.Gaze != nil {
			fmt.Fprintf(&b, " gaze=%.0f%%", *m.Gaze)
		}
		if m.Fillers != nil {
			fmt.Fprintf(&b, " fillers=%d", *m.Fillers)
		}
		b.WriteString("\n")
	}
	b.WriteString("Return JSON only.")
	return b.String()
}

func buildClarificationPrompt(req ClarificationRequest) string {
	return fmt.Sprintf(
		"Style: %s\nPack: %s\nDifficulty: %s\nCurrent question: %s\nCandidate asked: %s\n"+
			"Clarify scope and expectations in JSON only. Never give a model answer.",
		req.Style, req.Pack, req.Difficulty, req.Question, req.Clarification,
	)
}
