package handler

import (
	"ai-interviewer-be/internal/interview"
	"ai-interviewer-be/internal/pkg/logger"
	internalWS "ai-interviewer-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type InterviewHandler struct {
	generator interview.Generator
	recorder  interview.Recorder
	registry  *internalWS.Registry
	logger    logger.ILogger
}

func NewInterviewHandler(gen interview.Generator, rec interview.Recorder, registry *internalWS.Registry, log logger.ILogger) *InterviewHandler {
	return &InterviewHandler{
		generator: gen,
		recorder:  rec,
		registry:  registry,
		logger:    log,
	}
}

// ServeWs upgrades the request and runs one interview conversation on the
// resulting connection.
func (h *InterviewHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		sender := internalWS.NewSender(conn)
		engine := interview.NewEngine(h.generator, h.recorder, sender, h.logger)

		client := &internalWS.Client{Id: uuid.New(), SessionId: engine.SessionId()}
		h.registry.Register(client)
		defer h.registry.Unregister(client)

		h.logger.Info("InterviewHandler", "Interview connection opened", map[string]interface{}{
			"session_id": engine.SessionId().String(),
		})
		internalWS.Serve(engine, conn, h.logger)
		// Each start_session mints a new id; report the last run's.
		client.SessionId = engine.SessionId()
		if engine.Ended() {
			h.registry.NotifyEnded(client)
		}
		_ = sender.Close()
		h.logger.Info("InterviewHandler", "Interview connection closed", map[string]interface{}{
			"session_id": engine.SessionId().String(),
		})
	})(c)
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws/interview", h.ServeWs)
}
