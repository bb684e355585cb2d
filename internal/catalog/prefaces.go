package catalog

import (
	"math/rand"
	"strings"

	"ai-interviewer-be/internal/constant"
)

// Spoken acknowledgment prefaces, prepended to a question before synthesis.

var ackPrefaces = map[constant.Style][]string{
	constant.StyleSupportive: {
		"Thanks, that gives me a lot to work with.",
		"Great, I appreciate the detail.",
		"Good — let's keep that momentum.",
	},
	constant.StyleNeutral: {
		"Okay, noted.",
		"Understood.",
		"Alright, moving on.",
	},
	constant.StyleCold: {
		"Fine.",
		"Noted. Next.",
		"Moving on.",
	},
}

// AckPreface picks a generic acknowledgment for the style.
func AckPreface(style constant.Style, rng *rand.Rand) string {
	bank := ackPrefaces[style]
	if len(bank) == 0 {
		bank = ackPrefaces[constant.StyleNeutral]
	}
	return bank[rng.Intn(len(bank))]
}

// RedirectPreface is used when the previous answer was a non-answer. The
// follow-up variant acknowledges we are pressing the same topic; the primary
// variant resets to a fresh question.
func RedirectPreface(isFollowUp bool) string {
	if isFollowUp {
		return "No problem — let's come at the same thing from another angle."
	}
	return "That's alright, it happens. Let's try a different question."
}

// Leading phrases that make a question read as self-acknowledging. When the
// question itself opens with one of these, any preface is suppressed.
var ackOpenings = []string{
	"thanks",
	"thank you",
	"great",
	"good",
	"nice",
	"okay",
	"ok,",
	"alright",
	"understood",
	"got it",
	"fair enough",
	"interesting",
	"noted",
	"appreciate",
	"that's",
	"that is",
}

// HasAckOpening reports whether the question already opens like an
// acknowledgment.
func HasAckOpening(question string) bool {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, opening := range ackOpenings {
		if strings.HasPrefix(q, opening) {
			return true
		}
	}
	return false
}
