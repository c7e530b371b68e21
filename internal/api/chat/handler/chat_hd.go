package chatHandler

import (
	"SimpleChatbot/internal/api/chat"
	contextPkg "SimpleChatbot/pkg/context"
	"SimpleChatbot/pkg/handlerUtil"
	"SimpleChatbot/pkg/log"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	requestTimeout = 10 * time.Second
	pageTitle      = "NLP 챗봇"
)

func (h *ChatHandler) Chat(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat request")

	var req chat.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, fmt.Errorf("%w: %s", chat.ErrInvalidBody, err.Error()), ctx.Path(), "chat")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.Handle(ctx, requestID, chat.ErrMessageRequired, ctx.Path(), "chat")
	}

	result, err := h.chatService.ProcessMessage(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "chat")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *ChatHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	turns, err := h.chatService.GetHistory(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, chat.HistoryResponse{
		History: turns,
		Total:   len(turns),
	})
}

func (h *ChatHandler) Home(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	turns, err := h.chatService.GetHistory(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "home")
	}

	return ctx.Render("index", chat.HomePage{
		Title:   pageTitle,
		History: turns,
	})
}
