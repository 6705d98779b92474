package controller

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"conevibes-be/internal/constant"
	"conevibes-be/internal/dto"
	"conevibes-be/internal/pkg/serverutils"
	"conevibes-be/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Stream(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	ApplySelection(ctx *fiber.Ctx) error
	UpdateInput(ctx *fiber.Ctx) error
}

type chatController struct {
	recommendService service.IRecommendService
	sessionService   service.ISessionService
}

func NewChatController(
	recommendService service.IRecommendService,
	sessionService service.ISessionService,
) IChatController {
	return &chatController{
		recommendService: recommendService,
		sessionService:   sessionService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Stream)
	h.Post("session", c.CreateSession)
	h.Post("session/:id/selection", c.ApplySelection)
	h.Post("session/:id/input", c.UpdateInput)
}

// Stream runs the recommendation pipeline and streams the model's answer as
// Server-Sent Events. Errors before the first chunk fail the whole request;
// after that, a mid-stream failure is surfaced as an "error" event so the UI
// can tell a cut-off answer from a complete one.
func (c *chatController) Stream(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// fasthttp only closes the request context on server shutdown, never on
	// client disconnect. Cancellation has to be propagated by hand: the stream
	// writer cancels this context whenever it exits, so the upstream model
	// call is torn down even when the client hangs up mid-stream.
	reqCtx := ctx.Context()
	streamCtx, cancel := context.WithCancel(reqCtx)

	chunks, err := c.recommendService.StreamRecommendation(streamCtx, req.Messages)
	if err != nil {
		cancel()
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/event-stream")
	ctx.Set(fiber.HeaderCacheControl, "no-cache")
	ctx.Set(fiber.HeaderConnection, "keep-alive")
	ctx.Set("X-Accel-Buffering", "no")

	reqCtx.SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		var full strings.Builder
		completed := false

		for chunk := range chunks {
			if chunk.Err != nil {
				_ = writeEvent(w, constant.StreamEventError, dto.StreamErrorPayload{
					Code:    "STREAM_INTERRUPTED",
					Message: chunk.Err.Error(),
				})
				return
			}
			if chunk.Content != "" {
				full.WriteString(chunk.Content)
				if err := writeEvent(w, constant.StreamEventChunk, dto.StreamChunkPayload{Text: chunk.Content}); err != nil {
					// Client gone; cancel on exit stops the upstream stream
					return
				}
			}
			if chunk.Done {
				completed = true
				break
			}
		}

		if completed {
			_ = writeEvent(w, constant.StreamEventDone, dto.StreamDonePayload{Response: full.String()})
		}
	}))

	return nil
}

func writeEvent(w *bufio.Writer, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	res := c.sessionService.CreateSession()
	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *chatController) ApplySelection(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.ApplySelectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.ApplySelection(sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success apply selection", res))
}

func (c *chatController) UpdateInput(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.UpdateInputRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.sessionService.UpdateInput(sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update input", res))
}
