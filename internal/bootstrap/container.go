package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-interviewer-be/internal/config"
	"ai-interviewer-be/internal/controller"
	"ai-interviewer-be/internal/gateway"
	"ai-interviewer-be/internal/handler"
	"ai-interviewer-be/internal/pkg/logger"
	"ai-interviewer-be/internal/repository/unitofwork"
	"ai-interviewer-be/internal/service"
	"ai-interviewer-be/internal/websocket"
	"ai-interviewer-be/pkg/llm/factory"
	"ai-interviewer-be/pkg/speech"
	"ai-interviewer-be/pkg/speech/whisper"
	"ai-interviewer-be/pkg/speech/xtts"

	pktNats "ai-interviewer-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ResearchController controller.IResearchController
	SpeechController   controller.ISpeechController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	LifecycleService service.ILifecycleService

	// WebSockets
	InterviewHandler *handler.InterviewHandler
	Registry         *websocket.Registry
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	modelGateway := gateway.New(
		llmProvider,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		sysLogger,
	)

	// 2.5 Infrastructure (Moved up for dependency injection)
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Registry
	wsLogger := logger.NewIsolatedLogger("logs/interview.log")
	registry := websocket.NewRegistry(rdb, natsPub, wsLogger)
	go registry.Run()

	// Speech providers. Either side can be left unconfigured; the speech
	// endpoints answer 503 while the interview flow keeps working.
	var transcriber speech.Transcriber
	if cfg.Speech.WhisperURL != "" {
		transcriber = whisper.NewClient(cfg.Speech.WhisperURL, cfg.Speech.WhisperAPIKey, cfg.Speech.WhisperModel)
	}
	var synthesizer speech.Synthesizer
	if cfg.Speech.TTSURL != "" {
		synthesizer = xtts.NewClient(cfg.Speech.TTSURL, cfg.Speech.TTSSpeaker, cfg.Speech.TTSLanguage)
	}

	// 3. Services
	recorderService := service.NewRecorderService(pubSub, cfg.Records.TopicName, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Records.TopicName,
		uowFactory,
	)

	researchService := service.NewResearchService(uowFactory, sysLogger)
	speechService := service.NewSpeechService(transcriber, synthesizer, recorderService, uowFactory, sysLogger)

	var lifecycleService service.ILifecycleService
	if natsSub != nil {
		lifecycleService = service.NewLifecycleService(natsSub, wsLogger)
	}

	// Handler
	interviewHandler := handler.NewInterviewHandler(modelGateway, recorderService, registry, sysLogger)

	// 4. Controllers
	// Note: We return the container with public fields for the server to register
	return &Container{
		InterviewHandler:   interviewHandler,
		Registry:           registry,
		ResearchController: controller.NewResearchController(researchService),
		SpeechController:   controller.NewSpeechController(speechService),

		ConsumerService:  consumerService,
		LifecycleService: lifecycleService,
	}
}
