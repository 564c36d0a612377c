package controller

import (
	"hananav-be/internal/dto"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEvidenceController interface {
	RegisterRoutes(r fiber.Router)
	Select(ctx *fiber.Ctx) error
	ClosePanel(ctx *fiber.Ctx) error
	GetPanel(ctx *fiber.Ctx) error
	GetDetail(ctx *fiber.Ctx) error
}

type evidenceController struct {
	evidenceService service.IEvidenceService
}

func NewEvidenceController(evidenceService service.IEvidenceService) IEvidenceController {
	return &evidenceController{
		evidenceService: evidenceService,
	}
}

func (c *evidenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/evidence/v1")
	h.Post("session/:id/select", c.Select)
	h.Delete("session/:id/panel", c.ClosePanel)
	h.Get("session/:id/panel", c.GetPanel)
	h.Get(":evidenceId/detail", c.GetDetail)
}

func (c *evidenceController) Select(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SelectEvidenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.evidenceService.Select(ctx.Context(), id, req.EvidenceId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success select evidence", res))
}

func (c *evidenceController) ClosePanel(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.evidenceService.ClosePanel(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success close evidence panel", nil))
}

func (c *evidenceController) GetPanel(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.evidenceService.GetPanel(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get evidence panel", res))
}

func (c *evidenceController) GetDetail(ctx *fiber.Ctx) error {
	res, err := c.evidenceService.GetDetail(ctx.Context(), ctx.Params("evidenceId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get evidence detail", res))
}
