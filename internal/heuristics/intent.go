package heuristics

import (
	"regexp"
	"strings"

	"ai-interviewer-be/internal/constant"
)

// Follow-up intent classification. This is a precedence chain: the first
// matching rule wins, and reordering the rules changes observable behavior.

const (
	summarizeRuneLen  = 900
	summarizeRateWPM  = 190
	clarifyRuneLen    = 160
	rolePronounMargin = 2
)

var metricKeywords = []string{
	"percent", "%", "ms", "latency", "revenue", "users", "kpi", "roi", "errors", "cost",
}

var tradeoffKeywords = []string{
	"tradeoff", "trade-off", "tradeoffs", "trade-offs", "decision", "chose", "choice",
	"versus", "vs", "constraint",
}

var (
	digitRe    = regexp.MustCompile(`[0-9]`)
	singularRe = regexp.MustCompile(`\b(i|me|my|mine|myself)\b`)
	pluralRe   = regexp.MustCompile(`\b(we|us|our|ours|ourselves)\b`)
	wordRe     = regexp.MustCompile(`[a-z%]+|%`)
)

// FollowUpIntent resolves the angle for the next follow-up. Callers must have
// already excluded non-answers; those route to the redirect bank instead.
func FollowUpIntent(answer string, m *DeliveryMetrics) constant.Intent {
	lower := strings.ToLower(answer)
	runes := len([]rune(strings.TrimSpace(answer)))

	if runes > summarizeRuneLen || (m != nil && m.SpeakingRate != nil && *m.SpeakingRate > summarizeRateWPM) {
		return constant.IntentSummarize
	}
	if runes < clarifyRuneLen {
		return constant.IntentClarify
	}
	if !digitRe.MatchString(lower) && !containsAnyKeyword(lower, metricKeywords) {
		return constant.IntentNumbers
	}
	if len(pluralRe.FindAllString(lower, -1))-len(singularRe.FindAllString(lower, -1)) > rolePronounMargin {
		return constant.IntentRole
	}
	if containsAnyKeyword(lower, tradeoffKeywords) {
		return constant.IntentTradeoff
	}
	return constant.IntentImpact
}

func containsAnyKeyword(lower string, keywords []string) bool {
	words := wordRe.FindAllString(lower, -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	for _, kw := range keywords {
		if strings.ContainsAny(kw, "-%") {
			// multi-token or symbol keywords match as substrings
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if _, ok := set[kw]; ok {
			return true
		}
	}
	return false
}
