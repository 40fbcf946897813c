package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/anonto42/nano-midea/relations/internal/repositories"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles direct message HTTP requests
type MessageHandler struct {
	messageService MessageService
	publisher      events.Publisher
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService MessageService, publisher events.Publisher) *MessageHandler {
	return &MessageHandler{messageService: messageService, publisher: publisher}
}

// RegisterMessageRoutes registers message routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/users/:uid/messages/sent", h.ListSent)
	g.GET("/users/:uid/messages/received", h.ListReceived)
	g.GET("/users/:uid/messages/date/:date", h.FindByDate)
	g.GET("/users/:uid/messages/:mid", h.GetMessage)
	g.POST("/users/:uid/sends/:auid/message", h.SendMessage)
	g.DELETE("/users/:uid/messages/delete/:mid", h.DeleteMessage)
	g.DELETE("/users/:uid/messages/delete", h.DeleteAllSent)
}

// SendMessage sends the request body from :uid to :auid
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	msg, err := h.messageService.SendMessage(ctx, req.From, req.To, req.Body)
	if err != nil {
		return internalError(err)
	}

	publish(ctx, h.publisher, events.SubjectMessageSent, msg)
	return c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) ListSent(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	messages, err := h.messageService.ListSent(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) ListReceived(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	messages, err := h.messageService.ListReceived(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) GetMessage(c echo.Context) error {
	var p messageParams
	if err := bind(c, &p); err != nil {
		return err
	}
	msg, err := h.messageService.GetMessage(c.Request().Context(), p.MessageID)
	if err != nil {
		return internalError(err)
	}
	if msg == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Message not found")
	}
	return c.JSON(http.StatusOK, msg)
}

// FindByDate lists the messages :uid sent on :date (YYYY-MM-DD, UTC)
func (h *MessageHandler) FindByDate(c echo.Context) error {
	var p dateParams
	if err := bind(c, &p); err != nil {
		return err
	}
	messages, err := h.messageService.FindByDate(c.Request().Context(), p.UserID, p.Date)
	if errors.Is(err, repositories.ErrInvalidDate) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	var p messageParams
	if err := bind(c, &p); err != nil {
		return err
	}
	res, err := h.messageService.DeleteMessage(c.Request().Context(), p.MessageID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteAllSent deletes every message :uid has sent
func (h *MessageHandler) DeleteAllSent(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}

	ctx := c.Request().Context()
	res, err := h.messageService.DeleteAllSent(ctx, p.UserID)
	if err != nil {
		return internalError(err)
	}
	if res.RemovedCount > 0 {
		publish(ctx, h.publisher, events.SubjectMessagesPurged, echo.Map{"from": p.UserID, "removed_count": res.RemovedCount})
	}
	return c.JSON(http.StatusOK, res)
}
