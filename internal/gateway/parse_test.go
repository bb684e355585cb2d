package gateway

import "testing"

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantNil bool
		wantKey string
		wantVal string
	}{
		{
			name:    "direct parse",
			text:    `{"question": "Tell me about X"}`,
			wantKey: "question",
			wantVal: "Tell me about X",
		},
		{
			name:    "embedded in prose",
			text:    `Sure! {"question": "Tell me about X"} thanks`,
			wantKey: "question",
			wantVal: "Tell me about X",
		},
		{
			name:    "code fence",
			text:    "```json\n{\"question\": \"Tell me about X\"}\n```",
			wantKey: "question",
			wantVal: "Tell me about X",
		},
		{name: "no braces", text: "no json here at all", wantNil: true},
		{name: "broken json", text: "prefix { not json } suffix", wantNil: true},
		{name: "empty", text: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := extractJSONBlock(tt.text)
			if tt.wantNil {
				if data != nil {
					t.Fatalf("expected nil, got %v", data)
				}
				return
			}
			if data == nil {
				t.Fatal("expected data, got nil")
			}
			if got := data[tt.wantKey]; got != tt.wantVal {
				t.Errorf("data[%q] = %v, want %q", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestParseQuestionResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"json question", `{"question": "Tell me about X"}`, "Tell me about X?"},
		{"alternate field prompt", `{"prompt": "Why did it fail?"}`, "Why did it fail?"},
		{"alternate field text", `{"text": "Describe the migration"}`, "Describe the migration?"},
		{"raw first line fallback", "What was the hardest part?\nignored second line", "What was the hardest part?"},
		{"quoted raw line", `"Walk me through it"`, "Walk me through it?"},
		{"question mark appended", `{"question": "Explain the rollback"}`, "Explain the rollback?"},
		{"empty", "", ""},
		{"whitespace only", "   \n  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseQuestionResponse(tt.text); got != tt.want {
				t.Errorf("parseQuestionResponse(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseCoachingResponse(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		text := `{"follow_up": "What was your role?", "tips": [` +
			`{"summary": "A", "detail": "a detail"},` +
			`{"summary": "B", "text": "b via text field"},` +
			`{"summary": "C", "detail": "dropped, over cap"}]}`
		result, ok := parseCoachingResponse(text)
		if !ok {
			t.Fatal("expected ok")
		}
		if result.FollowUp != "What was your role?" {
			t.Errorf("FollowUp = %q", result.FollowUp)
		}
		if len(result.Tips) != 2 {
			t.Fatalf("tips capped at 2, got %d", len(result.Tips))
		}
		if result.Tips[1].Detail != "b via text field" {
			t.Errorf("detail via text field not honored: %+v", result.Tips[1])
		}
	})

	t.Run("camelCase follow-up only", func(t *testing.T) {
		result, ok := parseCoachingResponse(`{"followUp": "And then?"}`)
		if !ok || result.FollowUp != "And then?" {
			t.Errorf("got ok=%v result=%+v", ok, result)
		}
	})

	t.Run("malformed tips skipped", func(t *testing.T) {
		text := `{"tips": ["not an object", {"summary": "", "detail": "no summary"}, {"summary": "Keep it", "detail": "ok"}]}`
		result, ok := parseCoachingResponse(text)
		if !ok {
			t.Fatal("expected ok, one valid tip exists")
		}
		if len(result.Tips) != 1 || result.Tips[0].Summary != "Keep it" {
			t.Errorf("tips = %+v", result.Tips)
		}
	})

	t.Run("nothing usable", func(t *testing.T) {
		if _, ok := parseCoachingResponse(`{"tips": []}`); ok {
			t.Error("empty payload must be unavailable")
		}
		if _, ok := parseCoachingResponse("plain prose, no json"); ok {
			t.Error("no json must be unavailable")
		}
	})
}

func TestParseClarificationResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"message field", `{"message": "Scope it to one service."}`, "Scope it to one service."},
		{"clarification field", `{"clarification": "Assume mobile clients."}`, "Assume mobile clients."},
		{"raw fallback", "Just tell me about any production issue.", "Just tell me about any production issue."},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseClarificationResponse(tt.text); got != tt.want {
				t.Errorf("parseClarificationResponse(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
