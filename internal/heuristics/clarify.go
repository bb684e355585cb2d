package heuristics

import (
	"regexp"
	"strings"
)

// Patterns that mark a clarification request as fishing for the answer itself
// rather than scoping the question.
var answerSeekingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`what should i (say|answer)`),
	regexp.MustCompile(`what do you want me to say`),
	regexp.MustCompile(`give me (a|the|an) (sample |example |model )?answer`),
	regexp.MustCompile(`how would you answer`),
	regexp.MustCompile(`how should i answer`),
	regexp.MustCompile(`tell me the answer`),
	regexp.MustCompile(`answer (it|this|that) for me`),
	regexp.MustCompile(`what'?s the (right|correct|best) answer`),
	regexp.MustCompile(`just answer for me`),
	regexp.MustCompile(`can you answer (it|this|that)`),
}

// IsAnswerSeeking reports whether the clarification request should be refused
// instead of clarified.
func IsAnswerSeeking(text string) bool {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return false
	}
	for _, p := range answerSeekingPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
