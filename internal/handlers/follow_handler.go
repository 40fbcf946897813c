package handlers

import (
	"net/http"

	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followService FollowService
	publisher     events.Publisher
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followService FollowService, publisher events.Publisher) *FollowHandler {
	return &FollowHandler{followService: followService, publisher: publisher}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/users/:uid/follows", h.ListFollowing)
	g.GET("/users/:uid/followers", h.ListFollowers)
	g.GET("/tuits/:uid/follower", h.ListFollowers) // older clients use this path
	g.GET("/users/:uid/followers/count", h.CountFollowers)
	g.GET("/users/:uid/follows/:auid", h.FindFollow)
	g.POST("/users/:uid/follows/:auid", h.FollowUser)
	g.DELETE("/users/:uid/unfollows/all", h.UnfollowAll)
	g.DELETE("/users/:uid/unfollows/:auid", h.UnfollowUser)
	g.DELETE("/users/:uid/removefollowers/all", h.RemoveAllFollowers)
}

// FollowUser makes :uid follow :auid. Answers 201 when the follow is new and
// 200 with the existing follow when it was already in place.
func (h *FollowHandler) FollowUser(c echo.Context) error {
	var p userPairParams
	if err := bind(c, &p); err != nil {
		return err
	}

	ctx := c.Request().Context()
	follow, created, err := h.followService.FollowUser(ctx, p.UserID, p.OtherID)
	if err != nil {
		return internalError(err)
	}
	if !created {
		return c.JSON(http.StatusOK, follow)
	}

	publish(ctx, h.publisher, events.SubjectFollowCreated, follow)
	return c.JSON(http.StatusCreated, follow)
}

// UnfollowUser makes :uid stop following :auid
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	var p userPairParams
	if err := bind(c, &p); err != nil {
		return err
	}

	ctx := c.Request().Context()
	res, err := h.followService.UnfollowUser(ctx, p.UserID, p.OtherID)
	if err != nil {
		return internalError(err)
	}
	if res.RemovedCount > 0 {
		publish(ctx, h.publisher, events.SubjectFollowDeleted, echo.Map{"follower_id": p.UserID, "followed_id": p.OtherID})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *FollowHandler) ListFollowing(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	follows, err := h.followService.ListFollowing(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, follows)
}

func (h *FollowHandler) ListFollowers(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	follows, err := h.followService.ListFollowers(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, follows)
}

func (h *FollowHandler) CountFollowers(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	count, err := h.followService.CountFollowers(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": p.UserID, "followers_count": count})
}

func (h *FollowHandler) FindFollow(c echo.Context) error {
	var p userPairParams
	if err := bind(c, &p); err != nil {
		return err
	}
	follow, err := h.followService.FindFollow(c.Request().Context(), p.UserID, p.OtherID)
	if err != nil {
		return internalError(err)
	}
	if follow == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Follow not found")
	}
	return c.JSON(http.StatusOK, follow)
}

// UnfollowAll removes every follow :uid has made
func (h *FollowHandler) UnfollowAll(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	res, err := h.followService.UnfollowAll(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// RemoveAllFollowers removes every follower of :uid
func (h *FollowHandler) RemoveAllFollowers(c echo.Context) error {
	var p userParams
	if err := bind(c, &p); err != nil {
		return err
	}
	res, err := h.followService.RemoveAllFollowers(c.Request().Context(), p.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, res)
}
