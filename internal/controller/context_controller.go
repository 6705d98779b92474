package controller

import (
	"github.com/gofiber/fiber/v2"

	"conevibes-be/internal/dto"
	"conevibes-be/internal/pkg/serverutils"
	"conevibes-be/internal/service"
)

type IContextController interface {
	RegisterRoutes(r fiber.Router)
	IngestDocument(ctx *fiber.Ctx) error
	ClearIndex(ctx *fiber.Ctx) error
}

type contextController struct {
	ingestService service.IIngestService
}

func NewContextController(ingestService service.IIngestService) IContextController {
	return &contextController{ingestService: ingestService}
}

func (c *contextController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/context/v1", serverutils.JwtMiddleware)
	h.Post("documents", c.IngestDocument)
	h.Delete("documents", c.ClearIndex)
}

func (c *contextController) IngestDocument(ctx *fiber.Ctx) error {
	var req dto.IngestDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingestService.IngestDocument(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Document queued for indexing", res))
}

func (c *contextController) ClearIndex(ctx *fiber.Ctx) error {
	if err := c.ingestService.ClearIndex(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear index", &dto.ClearIndexResponse{Cleared: true}))
}
