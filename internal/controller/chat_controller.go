package controller

import (
	"hananav-be/internal/dto"
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	SendQuery(ctx *fiber.Ctx) error
	Rollback(ctx *fiber.Ctx) error
	SetMode(ctx *fiber.Ctx) error
	SetFilters(ctx *fiber.Ctx) error
	ClearFilters(ctx *fiber.Ctx) error
	SubmitFeedback(ctx *fiber.Ctx) error
	GetFilterOptions(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get("filter-options", c.GetFilterOptions)
	h.Post("session", c.CreateSession)
	h.Get("sessions", c.ListSessions)
	h.Delete("session/:id", c.DeleteSession)
	h.Get("session/:id/history", c.GetHistory)
	h.Post("session/:id/query", c.SendQuery)
	h.Post("session/:id/rollback", c.Rollback)
	h.Put("session/:id/mode", c.SetMode)
	h.Put("session/:id/filters", c.SetFilters)
	h.Delete("session/:id/filters", c.ClearFilters)
	h.Post("session/:id/message/:messageId/feedback", c.SubmitFeedback)
}

func sessionIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}
	return id, nil
}

func (c *chatController) GetFilterOptions(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetFilterOptions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get filter options", res))
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.chatService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	res, err := c.chatService.ListSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.chatService.DeleteSession(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.chatService.GetHistory(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) SendQuery(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SendQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendQuery(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	// 202: the assistant message resolves in the background.
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Query accepted", res))
}

func (c *chatController) Rollback(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.chatService.RollbackLastExchange(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success rollback last exchange", res))
}

func (c *chatController) SetMode(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SetModeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chatService.SetMode(ctx.Context(), id, req.Mode); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set chat mode", req.Mode))
}

func (c *chatController) SetFilters(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SetFiltersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	filters, err := c.chatService.SetFilters(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success set filters", filters))
}

func (c *chatController) ClearFilters(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	filters, err := c.chatService.ClearFilters(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear filters", filters))
}

func (c *chatController) SubmitFeedback(ctx *fiber.Ctx) error {
	id, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}
	messageId, err := uuid.Parse(ctx.Params("messageId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid message id")
	}

	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.chatService.SubmitFeedback(ctx.Context(), id, messageId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success submit feedback", nil))
}
