package speech

import "context"

// Transcription is the result of running speech recognition over one clip.
type Transcription struct {
	Text            string
	Language        string
	DurationSeconds float64
}

// Transcriber turns recorded audio into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (*Transcription, error)
}

// Synthesizer renders text to encoded audio. Speed is a playback multiplier
// around 1.0.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, speed float64) ([]byte, error)
	ContentType() string
}
