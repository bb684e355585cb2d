package gateway

import (
	"encoding/json"
	"strings"
)

// Tolerant JSON extraction so we survive code fences, preambles, and chatty
// models that wrap the payload in prose.
func extractJSONBlock(text string) map[string]interface{} {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		return data
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &data); err != nil {
		return nil
	}
	return data
}

func stringField(data map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := data[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []interface{}:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			if joined := strings.TrimSpace(strings.Join(parts, " ")); joined != "" {
				return joined
			}
		}
	}
	return ""
}

// parseQuestionResponse normalizes the question kind. As a last resort the
// first non-empty line of the raw text is treated as the question. The result
// always ends with a question mark; empty means unavailable.
func parseQuestionResponse(text string) string {
	question := ""
	if data := extractJSONBlock(text); data != nil {
		question = stringField(data, "question", "prompt", "text")
	}
	if question == "" {
		for _, line := range strings.Split(text, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				question = trimmed
				break
			}
		}
	}
	question = strings.TrimSpace(strings.Trim(strings.TrimSpace(question), `"`))
	if question == "" {
		return ""
	}
	if !strings.HasSuffix(question, "?") {
		question += "?"
	}
	return question
}

// parseCoachingResponse extracts a follow-up and at most two well-formed
// tips. If neither could be extracted the response is unusable.
func parseCoachingResponse(text string) (CoachingResult, bool) {
	data := extractJSONBlock(text)
	if data == nil {
		return CoachingResult{}, false
	}

	result := CoachingResult{
		FollowUp: stringField(data, "follow_up", "followup", "followUp"),
	}

	if payload, ok := data["tips"].([]interface{}); ok {
		for _, item := range payload {
			entry, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			summary := stringField(entry, "summary")
			detail := stringField(entry, "detail", "text")
			if summary == "" || detail == "" {
				continue
			}
			result.Tips = append(result.Tips, Tip{Summary: summary, Detail: detail})
			if len(result.Tips) >= 2 {
				break
			}
		}
	}

	if result.FollowUp == "" && len(result.Tips) == 0 {
		return CoachingResult{}, false
	}
	return result, true
}

// parseClarificationResponse accepts several field names, falling back to the
// raw trimmed body.
func parseClarificationResponse(text string) string {
	if data := extractJSONBlock(text); data != nil {
		if msg := stringField(data, "message", "clarification", "response", "text"); msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(text)
}
