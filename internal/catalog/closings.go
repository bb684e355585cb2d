package catalog

import "ai-interviewer-be/internal/constant"

// Closing lines for the terminal message, keyed by end reason then style.

var closings = map[constant.EndReason]map[constant.Style]string{
	constant.EndMaxQuestions: {
		constant.StyleSupportive: "That's all the questions I had — you worked through every one of them. Take a breath, you earned it.",
		constant.StyleNeutral:    "That covers the planned questions. The session is complete.",
		constant.StyleCold:       "We're done. That was the last question.",
	},
	constant.EndTimeLimit: {
		constant.StyleSupportive: "We're out of time, but you used it well. Let's stop here on a good note.",
		constant.StyleNeutral:    "Time is up. The session ends here.",
		constant.StyleCold:       "Time. We stop here.",
	},
	constant.EndManual: {
		constant.StyleSupportive: "Of course — we can stop here. You covered real ground today.",
		constant.StyleNeutral:    "Session stopped at your request.",
		constant.StyleCold:       "Stopped. Your call.",
	},
}

// Closing returns the terminal line for a reason and style.
func Closing(reason constant.EndReason, style constant.Style) string {
	byStyle, ok := closings[reason]
	if !ok {
		byStyle = closings[constant.EndManual]
	}
	if line, ok := byStyle[style]; ok {
		return line
	}
	return byStyle[constant.StyleNeutral]
}
