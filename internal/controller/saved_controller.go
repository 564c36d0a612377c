package controller

import (
	"hananav-be/internal/constant"
	"hananav-be/internal/dto"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISavedController interface {
	RegisterRoutes(r fiber.Router)
	Query(ctx *fiber.Ctx) error
	GetCategories(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	TogglePin(ctx *fiber.Ctx) error
	ToggleStar(ctx *fiber.Ctx) error
}

type savedController struct {
	savedService service.ISavedService
}

func NewSavedController(savedService service.ISavedService) ISavedController {
	return &savedController{
		savedService: savedService,
	}
}

func (c *savedController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/saved/v1")
	h.Get("", c.Query)
	h.Get("categories", c.GetCategories)
	h.Post("", c.Save)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Put(":id/pin", c.TogglePin)
	h.Put(":id/star", c.ToggleStar)
}

func (c *savedController) Query(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	category := ctx.Query("category", "all")

	res, err := c.savedService.Query(ctx.Context(), search, category)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get saved destinations", res))
}

func (c *savedController) GetCategories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get saved categories", constant.SavedCategories))
}

func (c *savedController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveDestinationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.savedService.Save(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success save destination", res))
}

func (c *savedController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateDestinationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = ctx.Params("id")
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.savedService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update destination", res))
}

func (c *savedController) Delete(ctx *fiber.Ctx) error {
	if err := c.savedService.Delete(ctx.Context(), ctx.Params("id")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete destination", nil))
}

func (c *savedController) TogglePin(ctx *fiber.Ctx) error {
	res, err := c.savedService.TogglePin(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle pin", res))
}

func (c *savedController) ToggleStar(ctx *fiber.Ctx) error {
	res, err := c.savedService.ToggleStar(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success toggle star", res))
}
