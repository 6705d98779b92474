package controller

import (
	"github.com/gofiber/fiber/v2"

	"conevibes-be/internal/pkg/logger"
	"conevibes-be/internal/pkg/serverutils"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	logger logger.ILogger
}

func NewAdminController(log logger.ILogger) IAdminController {
	return &adminController{logger: log}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1", serverutils.JwtMiddleware)
	h.Get("logs", c.GetLogs)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.logger.GetLogs(level, limit, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read logs")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", entries))
}
