package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/anonto42/nano-midea/relations/pkg/logger"
	"github.com/labstack/echo/v4"
)

type userParams struct {
	UserID string `param:"uid" validate:"required,max=64"`
}

type userPairParams struct {
	UserID  string `param:"uid" validate:"required,max=64"`
	OtherID string `param:"auid" validate:"required,max=64"`
}

type itemParams struct {
	ItemID string `param:"tid" validate:"required,max=64"`
}

type userItemParams struct {
	UserID string `param:"uid" validate:"required,max=64"`
	ItemID string `param:"tid" validate:"required,max=64"`
}

type messageParams struct {
	UserID    string `param:"uid" validate:"required,max=64"`
	MessageID string `param:"mid" validate:"required,max=64"`
}

type dateParams struct {
	UserID string `param:"uid" validate:"required,max=64"`
	Date   string `param:"date" validate:"required,datetime=2006-01-02"`
}

type sendMessageRequest struct {
	From string `param:"uid" json:"-" validate:"required,max=64"`
	To   string `param:"auid" json:"-" validate:"required,max=64"`
	Body string `json:"body"`
}

// bind fills p from the request and validates it, answering 400 on failure
func bind(c echo.Context, p any) error {
	if err := c.Bind(p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
}

// publish emits an event without failing the request; a lost event is logged.
func publish(ctx context.Context, p events.Publisher, subject string, payload any) {
	if err := p.Publish(ctx, subject, payload); err != nil {
		l := logger.Ctx(ctx)
		l.Warn().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}
