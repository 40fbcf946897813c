package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/anonto42/nano-midea/relations/internal/events"
	"github.com/anonto42/nano-midea/relations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookmarkHandler(t *testing.T) {
	svc := &mockBookmarkService{}
	pub := &recordingPublisher{}
	e := newTestEcho(NewBookmarkHandler(svc, pub).RegisterBookmarkRoutes)

	bm := &models.Bookmark{ID: 1, BookmarkedBy: "alice", BookmarkedItemID: "t1"}
	svc.On("BookmarkItem", mock.Anything, "alice", "t1").Return(bm, true, nil).Once()
	svc.On("BookmarkItem", mock.Anything, "alice", "t1").Return(bm, false, nil).Once()
	svc.On("UnbookmarkItem", mock.Anything, "alice", "t1").Return(models.DeleteResult{RemovedCount: 1}, nil)
	svc.On("ListBookmarkedBy", mock.Anything, "alice").Return([]models.BookmarkView{{Bookmark: *bm}}, nil)
	svc.On("ListBookmarkersOf", mock.Anything, "t1").Return(nil, errors.New("boom"))
	svc.On("CountBookmarks", mock.Anything, "t1").Return(int64(4), nil)
	svc.On("FindSpecificBookmark", mock.Anything, "alice", "t1").Return(&models.BookmarkView{Bookmark: *bm}, nil)
	svc.On("FindSpecificBookmark", mock.Anything, "alice", "t2").Return(nil, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"bookmark creates", http.MethodPost, "/api/users/alice/bookmarks/t1", http.StatusCreated},
		{"bookmark again is a no-op", http.MethodPost, "/api/users/alice/bookmarks/t1", http.StatusOK},
		{"unbookmark", http.MethodDelete, "/api/users/alice/unbookmarks/t1", http.StatusOK},
		{"list bookmarked by user", http.MethodGet, "/api/users/alice/bookmarks", http.StatusOK},
		{"list bookmarkers fails", http.MethodGet, "/api/tuits/t1/bookmarks", http.StatusInternalServerError},
		{"count bookmarks", http.MethodGet, "/api/tuits/t1/bookmarks/count", http.StatusOK},
		{"find bookmark", http.MethodGet, "/api/users/alice/bookmarks/t1", http.StatusOK},
		{"find missing bookmark", http.MethodGet, "/api/users/alice/bookmarks/t2", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(e, tt.method, tt.path, "")
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	assert.Equal(t, []string{events.SubjectBookmarkCreated}, pub.published())
	svc.AssertExpectations(t)
}
