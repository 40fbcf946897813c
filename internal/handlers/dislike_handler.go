package handlers

import (
	"net/http"

	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/labstack/echo/v4"
)

// DislikeHandler handles HTTP requests related to dislikes
type DislikeHandler struct {
	dislikeService DislikeService
	publisher      events.Publisher
}

// NewDislikeHandler creates a new DislikeHandler
func NewDislikeHandler(dislikeService DislikeService, publisher events.Publisher) *DislikeHandler {
	return &DislikeHandler{dislikeService: dislikeService, publisher: publisher}
}

// RegisterDislikeRoutes registers dislike-related routes
func (h *DislikeHandler) RegisterDislikeRoutes(g *echo.Group) {
	g.GET("/users/:uid/dislikes", h.ListDislikedBy)
	g.GET("/tuits/:tid/dislikes", h.ListDislikersOf)
	g.GET("/tuits/:tid/dislikes/count", h.CountDislikes)
	g.GET("/users/:uid/dislikes/:tid", h.FindSpecificDislike)
	g.POST("/users/:uid/dislikes/:tid", h.DislikeItem)
	g.DELETE("/users/:uid/undislikes/:tid", h.UndislikeItem)
}

// DislikeItem handles disliking a tuit
func (h *DislikeHandler) DislikeItem(c echo.Context) error {
	var p userItemParams
	if err := bind(c, &p); err != nil {
		return err
	}

	ctx := c.Request().Context()
	dislike, created, err := h.dislikeService.DislikeItem(ctx, p.UserID, p.ItemID)
	if err != nil {
		return internalError(err)
	}
	if !created {
		return c.JSON(http.StatusOK, dislike)
	}

	publish(ctx, h.publisher, events.SubjectDislikeCreated, dislike)
	return c.JSON(http.StatusCreated, dislike)
}

// UndislikeItem handles removing a dislike
func (h *DislikeHandler) UndislikeItem(c echo.Context) error {
	var p userItemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	res, err := h.dislikeService.UndislikeItem(c.Request().Context(), p.UserID, p.ItemID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *DislikeHandler) ListDislikedBy(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	dislikes, err := h.dislikeService.ListDislikedBy(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, dislikes)
}

func (h *DislikeHandler) ListDislikersOf(c echo.Context) error {
	var p itemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	dislikes, err := h.dislikeService.ListDislikersOf(c.Request().Context(), p.ItemID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, dislikes)
}

// CountDislikes retrieves how many users disliked a tuit
func (h *DislikeHandler) CountDislikes(c echo.Context) error {
	var p itemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	count, err := h.dislikeService.CountDislikes(c.Request().Context(), p.ItemID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tuit_id": p.ItemID, "dislikes_count": count})
}

func (h *DislikeHandler) FindSpecificDislike(c echo.Context) error {
	var p userItemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	dislike, err := h.dislikeService.FindSpecificDislike(c.Request().Context(), p.UserID, p.ItemID)
	if err != nil {
		return internalError(err)
	}
	if dislike == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Dislike not found")
	}
	return c.JSON(http.StatusOK, dislike)
}
