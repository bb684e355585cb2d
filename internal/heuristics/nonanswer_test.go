package heuristics

import "testing"

func TestIsNonAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"empty", "", true},
		{"whitespace only", "   \n\t ", true},
		{"exact refusal idk", "idk", true},
		{"exact refusal pass", "Pass.", true},
		{"exact refusal with case", "I Don't Know", true},
		{"exact refusal skip", "skip", true},
		{"short hedge", "honestly no idea about that one", true},
		{"hedge drawing a blank", "I'm drawing a blank here", true},
		{"hedge never used", "never used kubernetes", true},
		{
			name:   "hedge with recovery and enough words",
			answer: "I don't know, but I'd start by checking the logs and then roll back the last deploy",
			want:   false,
		},
		{
			name:   "hedge with recovery 'i think'",
			answer: "Not sure about the exact term, i think the pattern is called a circuit breaker and it trips on error rates",
			want:   false,
		},
		{
			name:   "long hedge without recovery is substantive",
			answer: "I can't recall the exact incident timeline anymore because it was over a year ago and involved three teams rotating through the on-call schedule while we were migrating the primary database to a new region and renegotiating our paging thresholds with the platform group at the same time",
			want:   false,
		},
		{"plain answer", "We sharded the user table by region and cut p99 latency in half.", false},
		{"short but concrete", "I led the billing migration.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNonAnswer(tt.answer); got != tt.want {
				t.Errorf("IsNonAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestIsAnswerSeeking(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"what should I say here?", true},
		{"Give me a sample answer", true},
		{"how would you answer this?", true},
		{"tell me the answer", true},
		{"what's the correct answer?", true},
		{"Does the system need to be globally distributed?", false},
		{"Do you mean a technical example or a people example?", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := IsAnswerSeeking(tt.text); got != tt.want {
				t.Errorf("IsAnswerSeeking(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
