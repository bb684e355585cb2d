package catalog

import (
	"strings"
	"unicode/utf8"

	"ai-interviewer-be/internal/constant"
)

// Deterministic clarification content used when the generation service is
// unavailable, plus the guardrail refusal for answer-seeking requests.

var refusals = map[constant.Style]string{
	constant.StyleSupportive: "I can't hand you an answer — that would rob you of the practice. But I can clarify what the question is asking, so tell me which part feels unclear.",
	constant.StyleNeutral:    "I won't provide a sample answer. I can clarify the scope of the question if you tell me what is unclear.",
	constant.StyleCold:       "No. You answer, I ask. If something in the question is unclear, name it.",
}

// Refusal returns the style-toned guardrail reply for requests that ask for
// the answer itself.
func Refusal(style constant.Style) string {
	if msg, ok := refusals[style]; ok {
		return msg
	}
	return refusals[constant.StyleNeutral]
}

const (
	starGuidance     = "A good way in: structure your answer as Situation, Task, Action, Result. Pick one concrete story and anchor every claim in it."
	starGuidanceHard = "Use STAR. One story, concrete actions, measured result."

	assumptionGuidance     = "A good way in: state your assumptions out loud, such as expected scale, constraints, and what you are optimizing for, then design against them. There is no single right answer."
	assumptionGuidanceHard = "State assumptions, then design. Scale, constraints, optimization target."
)

// ClarificationFallback composes the deterministic reply: generic framing by
// pack, the clarification text, and a restatement of the original question.
// Inputs and the outgoing message are truncated to the wire limits.
func ClarificationFallback(pack constant.Pack, difficulty constant.Difficulty, clarification, original string) string {
	clarification = Truncate(strings.TrimSpace(clarification), constant.MaxClarificationInputLen)
	original = Truncate(strings.TrimSpace(original), constant.MaxPromptRestateLen)

	systemsPack := pack == constant.PackSystemDesign ||
		strings.Contains(string(pack), "design") || strings.Contains(string(pack), "system")

	var guidance string
	switch {
	case systemsPack && difficulty == constant.DifficultyHard:
		guidance = assumptionGuidanceHard
	case systemsPack:
		guidance = assumptionGuidance
	case difficulty == constant.DifficultyHard:
		guidance = starGuidanceHard
	default:
		guidance = starGuidance
	}

	var b strings.Builder
	b.WriteString(guidance)
	if clarification != "" {
		b.WriteString(" Regarding your question: ")
		b.WriteString(clarification)
	}
	if original != "" {
		b.WriteString(" The question on the table is: ")
		b.WriteString(original)
	}
	return Truncate(b.String(), constant.MaxClarificationMessageLen)
}

// Truncate cuts s to at most max bytes, never splitting a rune.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
