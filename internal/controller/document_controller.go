package controller

import (
	"hananav-be/internal/pkg/serverutils"
	"hananav-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	GetDocument(ctx *fiber.Ctx) error
	GetBookmarks(ctx *fiber.Ctx) error
	GetTables(ctx *fiber.Ctx) error
	SearchPages(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Get(":id", c.GetDocument)
	h.Get(":id/bookmarks", c.GetBookmarks)
	h.Get(":id/tables", c.GetTables)
	h.Get(":id/search", c.SearchPages)
}

func (c *documentController) GetDocument(ctx *fiber.Ctx) error {
	res, err := c.documentService.GetDocument(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get document", res))
}

func (c *documentController) GetBookmarks(ctx *fiber.Ctx) error {
	res, err := c.documentService.GetBookmarks(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get bookmarks", res))
}

func (c *documentController) GetTables(ctx *fiber.Ctx) error {
	res, err := c.documentService.GetTables(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get tables", res))
}

func (c *documentController) SearchPages(ctx *fiber.Ctx) error {
	keyword := ctx.Query("keyword")
	res, err := c.documentService.SearchPages(ctx.Context(), ctx.Params("id"), keyword)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success search document pages", res))
}
