package controller

import (
	"errors"
	"io"

	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/pkg/serverutils"
	"ai-interviewer-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISpeechController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
	Synthesize(ctx *fiber.Ctx) error
}

type speechController struct {
	speechService service.ISpeechService
}

func NewSpeechController(speechService service.ISpeechService) ISpeechController {
	return &speechController{
		speechService: speechService,
	}
}

func (c *speechController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/speech/v1")
	h.Post("transcribe", c.Transcribe)
	h.Post("synthesize", c.Synthesize)
}

func (c *speechController) Transcribe(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("audio")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing 'audio' file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable audio upload")
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "unreadable audio upload")
	}
	if len(audio) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "empty audio upload")
	}

	res, err := c.speechService.Transcribe(ctx.Context(), audio, fileHeader.Filename, ctx.FormValue("session_id"))
	if err != nil {
		if errors.Is(err, service.ErrSpeechDisabled) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "transcription backend not configured")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transcription", res))
}

func (c *speechController) Synthesize(ctx *fiber.Ctx) error {
	var req dto.SynthesizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	audio, contentType, err := c.speechService.Synthesize(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSpeechDisabled) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "synthesis backend not configured")
		}
		return err
	}

	ctx.Set(fiber.HeaderContentType, contentType)
	return ctx.Send(audio)
}
