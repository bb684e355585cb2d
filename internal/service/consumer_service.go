package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope dto.RecordEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		log.Printf("[ERROR] Failed to unmarshal record envelope: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	var err error
	switch envelope.Kind {
	case dto.RecordKindSession:
		err = cs.persistSession(ctx, uow, &envelope)
	case dto.RecordKindAnswer:
		if envelope.Answer == nil {
			log.Printf("[ERROR] Answer envelope without a record")
			msg.Ack()
			return
		}
		err = uow.AnswerRecordRepository().Create(ctx, envelope.Answer)
	case dto.RecordKindCheckin:
		if envelope.Checkin == nil {
			log.Printf("[ERROR] Checkin envelope without a record")
			msg.Ack()
			return
		}
		err = uow.CheckinRecordRepository().Create(ctx, envelope.Checkin)
	case dto.RecordKindTelemetry:
		if envelope.Telemetry == nil {
			log.Printf("[ERROR] Telemetry envelope without a record")
			msg.Ack()
			return
		}
		err = uow.TelemetryRecordRepository().Create(ctx, envelope.Telemetry)
	default:
		log.Printf("[ERROR] Unknown record kind: %s", envelope.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Failed to persist %s record: %v", envelope.Kind, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	msg.Ack()
}

// persistSession upserts: the engine writes the same session twice, once at
// start and once with the final end reason.
func (cs *consumerService) persistSession(ctx context.Context, uow unitofwork.UnitOfWork, envelope *dto.RecordEnvelope) error {
	record := envelope.Session
	if record == nil {
		return nil
	}
	existing, err := uow.SessionRecordRepository().FindBySessionId(ctx, record.SessionId)
	if err != nil {
		return err
	}
	if existing == nil {
		return uow.SessionRecordRepository().Create(ctx, record)
	}
	record.Id = existing.Id
	return uow.SessionRecordRepository().Update(ctx, record)
}
