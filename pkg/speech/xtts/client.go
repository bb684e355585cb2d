package xtts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to an XTTS-style HTTP synthesis server that answers with raw
// WAV bytes.
type Client struct {
	URL      string
	Speaker  string
	Language string
	Client   *http.Client
}

func NewClient(url, speaker, language string) *Client {
	if language == "" {
		language = "en"
	}
	return &Client{
		URL:      url,
		Speaker:  speaker,
		Language: language,
		Client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type synthesisRequest struct {
	Text     string  `json:"text"`
	Speaker  string  `json:"speaker,omitempty"`
	Language string  `json:"language"`
	Speed    float64 `json:"speed"`
}

func (c *Client) Synthesize(ctx context.Context, text string, speed float64) ([]byte, error) {
	if speed <= 0 {
		speed = 1.0
	}
	payload, err := json.Marshal(synthesisRequest{
		Text:     text,
		Speaker:  c.Speaker,
		Language: c.Language,
		Speed:    speed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/tts", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("synthesis API returned status %d: %s", resp.StatusCode, string(raw))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	return audio, nil
}

func (c *Client) ContentType() string {
	return "audio/wav"
}
