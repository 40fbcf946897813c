package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/anonto42/nano-midea/relations/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
)

type mockFollowService struct{ mock.Mock }

func (m *mockFollowService) FollowUser(ctx context.Context, followerID, followedID string) (*models.Follow, bool, error) {
	args := m.Called(ctx, followerID, followedID)
	f, _ := args.Get(0).(*models.Follow)
	return f, args.Bool(1), args.Error(2)
}

func (m *mockFollowService) UnfollowUser(ctx context.Context, followerID, followedID string) (models.DeleteResult, error) {
	args := m.Called(ctx, followerID, followedID)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *mockFollowService) ListFollowing(ctx context.Context, userID string) ([]models.FollowView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]models.FollowView)
	return v, args.Error(1)
}

func (m *mockFollowService) ListFollowers(ctx context.Context, userID string) ([]models.FollowView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]models.FollowView)
	return v, args.Error(1)
}

func (m *mockFollowService) FindFollow(ctx context.Context, followerID, followedID string) (*models.Follow, error) {
	args := m.Called(ctx, followerID, followedID)
	f, _ := args.Get(0).(*models.Follow)
	return f, args.Error(1)
}

func (m *mockFollowService) CountFollowers(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFollowService) UnfollowAll(ctx context.Context, userID string) (models.DeleteResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *mockFollowService) RemoveAllFollowers(ctx context.Context, userID string) (models.DeleteResult, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

type mockBookmarkService struct{ mock.Mock }

func (m *mockBookmarkService) BookmarkItem(ctx context.Context, userID, itemID string) (*models.Bookmark, bool, error) {
	args := m.Called(ctx, userID, itemID)
	b, _ := args.Get(0).(*models.Bookmark)
	return b, args.Bool(1), args.Error(2)
}

func (m *mockBookmarkService) UnbookmarkItem(ctx context.Context, userID, itemID string) (models.DeleteResult, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *mockBookmarkService) ListBookmarkedBy(ctx context.Context, userID string) ([]models.BookmarkView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]models.BookmarkView)
	return v, args.Error(1)
}

func (m *mockBookmarkService) ListBookmarkersOf(ctx context.Context, itemID string) ([]models.BookmarkView, error) {
	args := m.Called(ctx, itemID)
	v, _ := args.Get(0).([]models.BookmarkView)
	return v, args.Error(1)
}

func (m *mockBookmarkService) FindSpecificBookmark(ctx context.Context, userID, itemID string) (*models.BookmarkView, error) {
	args := m.Called(ctx, userID, itemID)
	b, _ := args.Get(0).(*models.BookmarkView)
	return b, args.Error(1)
}

func (m *mockBookmarkService) CountBookmarks(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

type mockDislikeService struct{ mock.Mock }

func (m *mockDislikeService) DislikeItem(ctx context.Context, userID, itemID string) (*models.Dislike, bool, error) {
	args := m.Called(ctx, userID, itemID)
	d, _ := args.Get(0).(*models.Dislike)
	return d, args.Bool(1), args.Error(2)
}

func (m *mockDislikeService) UndislikeItem(ctx context.Context, userID, itemID string) (models.DeleteResult, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *mockDislikeService) ListDislikersOf(ctx context.Context, itemID string) ([]models.DislikeView, error) {
	args := m.Called(ctx, itemID)
	v, _ := args.Get(0).([]models.DislikeView)
	return v, args.Error(1)
}

func (m *mockDislikeService) ListDislikedBy(ctx context.Context, userID string) ([]models.DislikeView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]models.DislikeView)
	return v, args.Error(1)
}

func (m *mockDislikeService) CountDislikes(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDislikeService) FindSpecificDislike(ctx context.Context, userID, itemID string) (*models.DislikeView, error) {
	args := m.Called(ctx, userID, itemID)
	d, _ := args.Get(0).(*models.DislikeView)
	return d, args.Error(1)
}

type mockMessageService struct{ mock.Mock }

func (m *mockMessageService) SendMessage(ctx context.Context, from, to, body string) (*models.Message, error) {
	args := m.Called(ctx, from, to, body)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *mockMessageService) ListSent(ctx context.Context, from string) ([]models.Message, error) {
	args := m.Called(ctx, from)
	v, _ := args.Get(0).([]models.Message)
	return v, args.Error(1)
}

func (m *mockMessageService) ListReceived(ctx context.Context, to string) ([]models.Message, error) {
	args := m.Called(ctx, to)
	v, _ := args.Get(0).([]models.Message)
	return v, args.Error(1)
}

func (m *mockMessageService) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	args := m.Called(ctx, id)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *mockMessageService) FindByDate(ctx context.Context, from, date string) ([]models.Message, error) {
	args := m.Called(ctx, from, date)
	v, _ := args.Get(0).([]models.Message)
	return v, args.Error(1)
}

func (m *mockMessageService) DeleteMessage(ctx context.Context, id string) (models.DeleteResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

func (m *mockMessageService) DeleteAllSent(ctx context.Context, from string) (models.DeleteResult, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(models.DeleteResult), args.Error(1)
}

// recordingPublisher keeps the subjects it was asked to publish
type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return p.err
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.subjects...)
}

func newTestEcho(register func(g *echo.Group)) *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	register(e.Group("/api"))
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
