package heuristics

import (
	"regexp"
	"strings"
)

// Non-answer detection. The rule set is a precedence chain, not a scored
// classifier; the order below is observable behavior.

var exactRefusals = map[string]struct{}{
	"idk":                   {},
	"i don't know":          {},
	"i dont know":           {},
	"dont know":             {},
	"don't know":            {},
	"dunno":                 {},
	"no idea":               {},
	"no clue":               {},
	"not sure":              {},
	"pass":                  {},
	"skip":                  {},
	"skip this":             {},
	"next question":         {},
	"nothing":               {},
	"nothing comes to mind": {},
	"i got nothing":         {},
	"can't answer":          {},
	"cant answer":           {},
}

var hedgePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bno idea\b`),
	regexp.MustCompile(`\bnot sure\b`),
	regexp.MustCompile(`\bdon'?t know\b`),
	regexp.MustCompile(`\bdon'?t really know\b`),
	regexp.MustCompile(`\bdrawing a blank\b`),
	regexp.MustCompile(`\bmind (went|is) blank\b`),
	regexp.MustCompile(`\bnever (used|done|worked|built|faced)\b`),
	regexp.MustCompile(`\bcan'?t (think|recall|remember)\b`),
	regexp.MustCompile(`\bunfamiliar with\b`),
	regexp.MustCompile(`\bno experience\b`),
	regexp.MustCompile(`\bnot familiar\b`),
}

// Continuation signals: a hedge followed by one of these usually means the
// candidate recovered into a real answer.
var recoveryPhrases = []string{
	" but ",
	" however",
	" although",
	" i think",
	" i believe",
	" i would",
	" i'd ",
	" my approach",
	" my guess",
	" for example",
	" for instance",
	" at least",
	" what i do know",
	" if i had to",
}

const (
	recoveryMinWords = 9
	shortAnswerWords = 24
	shortAnswerRunes = 140
)

func normalizeAnswer(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Trim(s, ".,!?;: ")
	return strings.Join(strings.Fields(s), " ")
}

// IsNonAnswer reports whether the answer carries no substantive content.
// Empty input fails open to true. Short hedges are refusals; long hedges, or
// hedges with a recovery phrase and enough words, are treated as substantive.
func IsNonAnswer(text string) bool {
	normalized := normalizeAnswer(text)
	if normalized == "" {
		return true
	}
	if _, ok := exactRefusals[normalized]; ok {
		return true
	}

	hedged := false
	for _, p := range hedgePatterns {
		if p.MatchString(normalized) {
			hedged = true
			break
		}
	}
	if !hedged {
		return false
	}

	words := len(strings.Fields(normalized))
	if words >= recoveryMinWords {
		padded := " " + normalized + " "
		for _, phrase := range recoveryPhrases {
			if strings.Contains(padded, phrase) {
				return false
			}
		}
	}

	// Short hedges are almost always refusals; long ones usually contain
	// real content even without an explicit recovery phrase.
	return words <= shortAnswerWords || len([]rune(normalized)) <= shortAnswerRunes
}
