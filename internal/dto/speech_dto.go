package dto

type TranscribeResponse struct {
	Text            string  `json:"text"`
	Language        string  `json:"language,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	LatencyMs       float64 `json:"latency_ms"`
}

type SynthesizeRequest struct {
	Text      string `json:"text" validate:"required,max=2000"`
	Style     string `json:"style"`
	SessionId string `json:"session_id"`
}
