package controller

import (
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHomeController interface {
	RegisterRoutes(r fiber.Router)
	GetPopularQuestions(ctx *fiber.Ctx) error
	GetPresetRoutes(ctx *fiber.Ctx) error
	GetChatModes(ctx *fiber.Ctx) error
}

type homeController struct {
	homeService service.IHomeService
}

func NewHomeController(homeService service.IHomeService) IHomeController {
	return &homeController{
		homeService: homeService,
	}
}

func (c *homeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/home/v1")
	h.Get("popular-questions", c.GetPopularQuestions)
	h.Get("preset-routes", c.GetPresetRoutes)
	h.Get("chat-modes", c.GetChatModes)
}

func (c *homeController) GetPopularQuestions(ctx *fiber.Ctx) error {
	res, err := c.homeService.GetPopularQuestions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get popular questions", res))
}

func (c *homeController) GetPresetRoutes(ctx *fiber.Ctx) error {
	res, err := c.homeService.GetPresetRoutes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get preset routes", res))
}

func (c *homeController) GetChatModes(ctx *fiber.Ctx) error {
	res, err := c.homeService.GetChatModes(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get chat modes", res))
}
