package catalog

import (
	"math/rand"

	"ai-interviewer-be/internal/constant"
)

// Follow-up phrase banks, keyed by resolved intent then style. One phrase is
// chosen uniformly at random; callers inject the rand source.

var followUpBanks = map[constant.Intent]map[constant.Style][]string{
	constant.IntentSummarize: {
		constant.StyleSupportive: {
			"That was rich — can you give me the thirty-second version of the heart of it?",
			"Lovely detail. If you had one sentence, what would you want me to remember?",
		},
		constant.StyleNeutral: {
			"Summarize that in two sentences: the decision and the result.",
			"What is the one-line takeaway from everything you just said?",
		},
		constant.StyleCold: {
			"Too long. Give me the decision and the outcome in one breath.",
			"Condense that. What actually mattered?",
		},
	},
	constant.IntentClarify: {
		constant.StyleSupportive: {
			"I'd love a bit more — can you walk me through what you actually did there?",
			"Can you open that up a little? Paint the scene for me.",
		},
		constant.StyleNeutral: {
			"Expand on that. What concretely happened, step by step?",
			"That was brief. Walk me through the details.",
		},
		constant.StyleCold: {
			"That tells me almost nothing. Details, now.",
			"Thin answer. What exactly did you do?",
		},
	},
	constant.IntentNumbers: {
		constant.StyleSupportive: {
			"This sounds impactful — can you put a number on it? Latency, revenue, users, anything.",
			"What would the metrics say about that win?",
		},
		constant.StyleNeutral: {
			"Quantify that. What moved, and by how much?",
			"What metric did this change, and from what to what?",
		},
		constant.StyleCold: {
			"Your answer felt light on specifics. Give numbers.",
			"No numbers, no story. Quantify it.",
		},
	},
	constant.IntentRole: {
		constant.StyleSupportive: {
			"I hear a lot of 'we' — what was the part that was distinctly yours?",
			"And within the team, what did you personally own?",
		},
		constant.StyleNeutral: {
			"What was your exact role, and what did you deliver?",
			"Separate your contribution from the team's. What was yours?",
		},
		constant.StyleCold: {
			"Stop saying 'we'. What did you do?",
			"The team is not interviewing. What was your part?",
		},
	},
	constant.IntentTradeoff: {
		constant.StyleSupportive: {
			"You mentioned a choice there — what was the option you let go of, and does it still nag at you?",
			"What would the other path have looked like?",
		},
		constant.StyleNeutral: {
			"What were the alternatives you rejected, and why?",
			"Walk me through the tradeoff. What did choosing this cost you?",
		},
		constant.StyleCold: {
			"Defend that choice. What did you sacrifice and who disagreed?",
			"Every choice has a loser. What lost here, and was that right?",
		},
	},
	constant.IntentImpact: {
		constant.StyleSupportive: {
			"Nice — can you share a detail that shows your impact?",
			"How did that experience shape how you collaborate now?",
		},
		constant.StyleNeutral: {
			"What changed because you did this? Who noticed?",
			"What would you do differently if you faced this again?",
		},
		constant.StyleCold: {
			"Time is short — summarize the critical decision you made.",
			"So what? Tell me why any of that mattered.",
		},
	},
}

// FollowUpPhrase resolves (intent, style) to one phrase from the bank.
func FollowUpPhrase(intent constant.Intent, style constant.Style, rng *rand.Rand) string {
	byStyle, ok := followUpBanks[intent]
	if !ok {
		byStyle = followUpBanks[constant.IntentImpact]
	}
	bank := byStyle[style]
	if len(bank) == 0 {
		bank = byStyle[constant.StyleNeutral]
	}
	return bank[rng.Intn(len(bank))]
}

// Redirect banks replace the intent chain entirely when the answer carried no
// substance. Behavioral wording nudges toward a story; general wording nudges
// toward any starting point.

var redirectBehavioral = []string{
	"No story comes to mind? Pick any project from the last year and tell me one moment you had to make a call.",
	"Let's lower the bar: tell me about a normal week that went sideways, and what you did first.",
	"Forget the perfect example. What is the most recent time you had to fix something you didn't break?",
}

var redirectGeneral = []string{
	"That's fine — think out loud instead. What would be your very first step if you had to attempt it?",
	"Let's make it smaller. What part of the question do you feel most comfortable attacking?",
	"Skip the polished answer. What do you know that is even adjacent to this?",
}

// RedirectFollowUp returns the pressing question for a non-answer.
func RedirectFollowUp(pack constant.Pack, rng *rand.Rand) string {
	bank := redirectGeneral
	if pack == constant.PackBehavioral {
		bank = redirectBehavioral
	}
	return bank[rng.Intn(len(bank))]
}
