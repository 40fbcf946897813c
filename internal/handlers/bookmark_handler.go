package handlers

import (
	"net/http"

	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/labstack/echo/v4"
)

// BookmarkHandler handles bookmark HTTP requests
type BookmarkHandler struct {
	bookmarkService BookmarkService
	publisher       events.Publisher
}

// NewBookmarkHandler creates a new BookmarkHandler
func NewBookmarkHandler(bookmarkService BookmarkService, publisher events.Publisher) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService, publisher: publisher}
}

// RegisterBookmarkRoutes registers bookmark routes
func (h *BookmarkHandler) RegisterBookmarkRoutes(g *echo.Group) {
	g.GET("/users/:uid/bookmarks", h.ListBookmarkedBy)
	g.GET("/tuits/:tid/bookmarks", h.ListBookmarkersOf)
	g.GET("/tuits/:tid/bookmarks/count", h.CountBookmarks)
	g.GET("/users/:uid/bookmarks/:tid", h.FindSpecificBookmark)
	g.POST("/users/:uid/bookmarks/:tid", h.BookmarkItem)
	g.DELETE("/users/:uid/unbookmarks/:tid", h.UnbookmarkItem)
}

// BookmarkItem bookmarks :tid for :uid
func (h *BookmarkHandler) BookmarkItem(c echo.Context) error {
	var p userItemParams
	if err := bind(c, &p); err != nil {
		return err
	}

	ctx := c.Request().Context()
	bookmark, created, err := h.bookmarkService.BookmarkItem(ctx, p.UserID, p.ItemID)
	if err != nil {
		return internalError(err)
	}
	if !created {
		return c.JSON(http.StatusOK, bookmark)
	}

	publish(ctx, h.publisher, events.SubjectBookmarkCreated, bookmark)
	return c.JSON(http.StatusCreated, bookmark)
}

// UnbookmarkItem removes :tid from the bookmarks of :uid
func (h *BookmarkHandler) UnbookmarkItem(c echo.Context) error {
	var p userItemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	res, err := h.bookmarkService.UnbookmarkItem(c.Request().Context(), p.UserID, p.ItemID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *BookmarkHandler) ListBookmarkedBy(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	bookmarks, err := h.bookmarkService.ListBookmarkedBy(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) ListBookmarkersOf(c echo.Context) error {
	var p itemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	bookmarks, err := h.bookmarkService.ListBookmarkersOf(c.Request().Context(), p.ItemID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) CountBookmarks(c echo.Context) error {
	var p itemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	count, err := h.bookmarkService.CountBookmarks(c.Request().Context(), p.ItemID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tuit_id": p.ItemID, "bookmarks_count": count})
}

func (h *BookmarkHandler) FindSpecificBookmark(c echo.Context) error {
	var p userItemParams
	if err := bind(c, &p); err != nil {
		return err
	}
	bookmark, err := h.bookmarkService.FindSpecificBookmark(c.Request().Context(), p.UserID, p.ItemID)
	if err != nil {
		return internalError(err)
	}
	if bookmark == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Bookmark not found")
	}
	return c.JSON(http.StatusOK, bookmark)
}
