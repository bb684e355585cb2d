package controller

import (
	"errors"

	"ai-interviewer-be/internal/dto"
	"ai-interviewer-be/internal/pkg/serverutils"
	"ai-interviewer-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	CreateCheckin(ctx *fiber.Ctx) error
	ExportSession(ctx *fiber.Ctx) error
	MetricsSummary(ctx *fiber.Ctx) error
}

type researchController struct {
	researchService service.IResearchService
}

func NewResearchController(researchService service.IResearchService) IResearchController {
	return &researchController{
		researchService: researchService,
	}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/research/v1")
	h.Post("checkins", c.CreateCheckin)
	h.Get("sessions/:id/export", c.ExportSession)
	h.Get("metrics/summary", c.MetricsSummary)
}

func (c *researchController) CreateCheckin(ctx *fiber.Ctx) error {
	var req dto.CreateCheckinRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.researchService.LogCheckin(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Checkin logged", res))
}

func (c *researchController) ExportSession(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.researchService.ExportSession(ctx.Context(), sessionId)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "session not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session export", res))
}

func (c *researchController) MetricsSummary(ctx *fiber.Ctx) error {
	res, err := c.researchService.MetricsSummary(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Metrics summary", res))
}
