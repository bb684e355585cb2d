package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"ai-interviewer-be/internal/constant"
	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/pkg/logger"
	"ai-interviewer-be/internal/repository/unitofwork"
	"ai-interviewer-be/pkg/speech"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

var ErrSpeechDisabled = errors.New("speech backend not configured")

// Style-dependent playback speed: a supportive interviewer speaks slightly
// faster and lighter, a cold one slower and flatter.
var styleSpeeds = map[constant.Style]float64{
	constant.StyleSupportive: 1.06,
	constant.StyleNeutral:    1.0,
	constant.StyleCold:       0.94,
}

type ISpeechService interface {
	Transcribe(ctx context.Context, audio []byte, filename string, sessionId string) (*dto.TranscribeResponse, error)
	Synthesize(ctx context.Context, req *dto.SynthesizeRequest) ([]byte, string, error)
}

type speechService struct {
	transcriber speech.Transcriber
	synthesizer speech.Synthesizer
	recorder    IRecorderService
	uowFactory  unitofwork.RepositoryFactory
	cache       *gocache.Cache
	logger      logger.ILogger
}

func NewSpeechService(
	transcriber speech.Transcriber,
	synthesizer speech.Synthesizer,
	recorder IRecorderService,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) ISpeechService {
	return &speechService{
		transcriber: transcriber,
		synthesizer: synthesizer,
		recorder:    recorder,
		uowFactory:  uowFactory,
		cache:       gocache.New(30*time.Minute, 10*time.Minute),
		logger:      log,
	}
}

func (s *speechService) Transcribe(ctx context.Context, audio []byte, filename string, sessionId string) (*dto.TranscribeResponse, error) {
	if s.transcriber == nil {
		return nil, ErrSpeechDisabled
	}

	started := time.Now()
	result, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, err
	}
	latency := float64(time.Since(started)) / float64(time.Millisecond)

	if id, parseErr := uuid.Parse(sessionId); parseErr == nil {
		s.recorder.RecordTelemetry(&entity.TelemetryRecord{
			Id:        uuid.New(),
			SessionId: id,
			Group:     s.resolveGroup(ctx, id),
			Event:     constant.TelemetryEventSTT,
			Payload: map[string]interface{}{
				"latency_ms": latency,
				"duration":   result.DurationSeconds,
				"language":   result.Language,
			},
			CreatedAt: time.Now(),
		})
	}

	return &dto.TranscribeResponse{
		Text:            result.Text,
		Language:        result.Language,
		DurationSeconds: result.DurationSeconds,
		LatencyMs:       latency,
	}, nil
}

func (s *speechService) Synthesize(ctx context.Context, req *dto.SynthesizeRequest) ([]byte, string, error) {
	if s.synthesizer == nil {
		return nil, "", ErrSpeechDisabled
	}

	style := constant.StyleNeutral
	if parsed, ok := constant.ParseStyle(req.Style); ok {
		style = parsed
	}
	speed := styleSpeeds[style]

	key := synthesisKey(req.Text, style)
	if cached, found := s.cache.Get(key); found {
		return cached.([]byte), s.synthesizer.ContentType(), nil
	}

	audio, err := s.synthesizer.Synthesize(ctx, req.Text, speed)
	if err != nil {
		return nil, "", err
	}
	s.cache.Set(key, audio, gocache.DefaultExpiration)

	s.logger.Debug("SpeechService", "Synthesized reply", map[string]interface{}{
		"style": string(style),
		"bytes": len(audio),
	})
	return audio, s.synthesizer.ContentType(), nil
}

// resolveGroup labels telemetry with the group recorded for the session. An
// unknown session keeps the default label rather than failing the request.
func (s *speechService) resolveGroup(ctx context.Context, sessionId uuid.UUID) string {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	record, err := uow.SessionRecordRepository().FindBySessionId(ctx, sessionId)
	if err != nil || record == nil {
		return constant.DefaultGroup
	}
	return record.Group
}

func synthesisKey(text string, style constant.Style) string {
	sum := sha256.Sum256([]byte(string(style) + "|" + text))
	return hex.EncodeToString(sum[:])
}
