package service

import (
	"context"

	"ai-interviewer-be/internal/pkg/logger"
	"ai-interviewer-be/pkg/events"
	natsbus "ai-interviewer-be/pkg/nats"
)

type ILifecycleService interface {
	Start()
}

// lifecycleService consumes session lifecycle events from NATS and writes
// them to the audit log. It runs as a background worker next to the REST
// server and keeps a durable consumer so events survive restarts.
type lifecycleService struct {
	natsSub *natsbus.Subscriber
	logger  logger.ILogger
}

func NewLifecycleService(natsSub *natsbus.Subscriber, log logger.ILogger) ILifecycleService {
	return &lifecycleService{
		natsSub: natsSub,
		logger:  log,
	}
}

func (s *lifecycleService) Start() {
	err := s.natsSub.Subscribe("events.session.>", "interview-lifecycle", func(ctx context.Context, event events.Event) error {
		s.logger.Info("lifecycle", "session event", map[string]interface{}{
			"event_type":  event.EventType(),
			"occurred_at": event.Timestamp(),
			"payload":     event.Payload(),
		})
		return nil
	})
	if err != nil {
		s.logger.Error("lifecycle", "failed to subscribe to session events", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
