package controller

import (
	"hananav-be/internal/dto"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboard(ctx *fiber.Ctx) error
	GetConnectors(ctx *fiber.Ctx) error
	GetQualityLeague(ctx *fiber.Ctx) error
	GetUsage(ctx *fiber.Ctx) error
	GetSystemLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Get("dashboard", c.GetDashboard)
	h.Get("connectors", c.GetConnectors)
	h.Get("quality-league", c.GetQualityLeague)
	h.Get("usage", c.GetUsage)
	h.Get("logs", c.GetSystemLogs)
}

func (c *adminController) GetDashboard(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}

func (c *adminController) GetConnectors(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetConnectors(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get connectors", res))
}

func (c *adminController) GetQualityLeague(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetQualityLeague(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get quality league", res))
}

func (c *adminController) GetUsage(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetUsage(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get usage histogram", res))
}

func (c *adminController) GetSystemLogs(ctx *fiber.Ctx) error {
	var req dto.GetLogsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.GetSystemLogs(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get system logs", res))
}
