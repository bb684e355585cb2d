package catalog

import "ai-interviewer-be/internal/constant"

// Question banks. Pack banks are keyed by difficulty; the per-style banks are
// the last resort when no pack bank applies. Content is data, selection is
// deterministic: bank[turn % len(bank)].

var packBanks = map[constant.Pack]map[constant.Difficulty][]string{
	constant.PackBehavioral: {
		constant.DifficultyStandard: {
			"Tell me about a time you had to deliver under a deadline that slipped anyway. What did you do?",
			"Describe a disagreement with a teammate. How did it get resolved?",
			"Walk me through a project where the requirements changed midway. How did you adapt?",
			"Tell me about a piece of feedback that was hard to hear. What changed afterwards?",
			"Describe a time you had to influence a decision without having authority.",
			"Tell me about a failure you own completely. What would you repeat, and what would you not?",
			"Describe a situation where you had to onboard quickly into unfamiliar territory.",
			"Tell me about a time you said no to a stakeholder. How did you frame it?",
		},
		constant.DifficultyHard: {
			"Tell me about the worst production incident you were responsible for. Walk me through your decisions hour by hour.",
			"Describe a time your judgment was overruled and the outcome proved you right. What did you do next?",
			"Tell me about firing or removing someone from a project. How did you decide?",
			"Describe the hardest tradeoff you made under pressure where every option hurt someone.",
			"Tell me about a commitment you broke. Who paid for it, and what did you change?",
			"Describe a time you shipped something you knew was not good enough. Defend that call.",
		},
	},
	constant.PackSystemDesign: {
		constant.DifficultyStandard: {
			"Design a URL shortener that serves a hundred million redirects a day. Where do you start?",
			"How would you design a rate limiter shared across a fleet of API servers?",
			"Design the storage layer for an append-only activity feed. What are your access patterns?",
			"How would you design a notification system that fans out to email, push, and in-app channels?",
			"Design a job scheduler that guarantees at-least-once execution. What breaks first under load?",
			"How would you add full-text search to an existing product without rewriting its database?",
			"Design a file upload pipeline for large media files. Where do failures hide?",
			"How would you design a leaderboard that updates in near real time for millions of players?",
		},
		constant.DifficultyHard: {
			"Design a multi-region write path with a hard requirement of five-nines availability. What do you give up?",
			"Your cache hit rate just dropped from 98% to 60% in production. Design the investigation and the fix.",
			"Design exactly-once payment processing on top of an at-least-once message bus. Be precise about the failure windows.",
			"Design a schema migration strategy for a table with ten billion rows and no maintenance window.",
			"You must cut infrastructure cost by 40% without losing a single customer-facing SLO. Walk me through the design review.",
			"Design a consistent snapshot mechanism across twelve microservices that each own their data.",
		},
	},
}

var styleBanks = map[constant.Style][]string{
	constant.StyleSupportive: {
		"Tell me about a project you loved working on and why.",
		"What is a strength you're proud of, and how do you use it on teams?",
		"Tell me about a moment at work that made you feel genuinely effective.",
		"What kind of problem do you most enjoy being handed?",
	},
	constant.StyleNeutral: {
		"Walk me through a challenging problem you recently solved.",
		"Describe a time you disagreed with a teammate. What happened?",
		"What is the most complex system you have worked on, and what was your part in it?",
		"Tell me about a decision you made with incomplete information.",
	},
	constant.StyleCold: {
		"Why should we trust you with high-stakes work?",
		"Explain a recent mistake. How did you recover? Be concise.",
		"What have you actually shipped that mattered? Numbers, please.",
		"Convince me you are not the bottleneck on your current team.",
	},
}

// Question picks the catalog question for a turn. Pack+difficulty banks win;
// unknown or general packs resolve through the style banks.
func Question(pack constant.Pack, difficulty constant.Difficulty, style constant.Style, turn int) string {
	if turn < 0 {
		turn = 0
	}
	if byDifficulty, ok := packBanks[pack]; ok {
		if bank := byDifficulty[difficulty]; len(bank) > 0 {
			return bank[turn%len(bank)]
		}
	}
	bank := styleBanks[style]
	if len(bank) == 0 {
		bank = styleBanks[constant.StyleNeutral]
	}
	return bank[turn%len(bank)]
}
