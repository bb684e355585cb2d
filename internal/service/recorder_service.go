package service

import (
	"encoding/json"

	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/entity"
	"ai-interviewer-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IRecorderService accepts research records from the interview engine and
// hands them to the persistence pipeline. Calls never block on the database
// and never surface errors; losing a record must not disturb an interview.
type IRecorderService interface {
	RecordSession(record *entity.SessionRecord)
	RecordAnswer(record *entity.AnswerRecord)
	RecordCheckin(record *entity.CheckinRecord)
	RecordTelemetry(record *entity.TelemetryRecord)
}

type recorderService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewRecorderService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IRecorderService {
	return &recorderService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (s *recorderService) RecordSession(record *entity.SessionRecord) {
	s.publish(dto.RecordEnvelope{Kind: dto.RecordKindSession, Session: record})
}

func (s *recorderService) RecordAnswer(record *entity.AnswerRecord) {
	s.publish(dto.RecordEnvelope{Kind: dto.RecordKindAnswer, Answer: record})
}

func (s *recorderService) RecordCheckin(record *entity.CheckinRecord) {
	s.publish(dto.RecordEnvelope{Kind: dto.RecordKindCheckin, Checkin: record})
}

func (s *recorderService) RecordTelemetry(record *entity.TelemetryRecord) {
	s.publish(dto.RecordEnvelope{Kind: dto.RecordKindTelemetry, Telemetry: record})
}

func (s *recorderService) publish(envelope dto.RecordEnvelope) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		s.logger.Error("RecorderService", "Failed to marshal record envelope", map[string]interface{}{
			"kind":  envelope.Kind,
			"error": err.Error(),
		})
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Error("RecorderService", "Failed to publish record", map[string]interface{}{
			"kind":  envelope.Kind,
			"error": err.Error(),
		})
	}
}
