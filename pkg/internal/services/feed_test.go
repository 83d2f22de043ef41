package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

// fakeBackend serves the feed endpoints and counts mutating requests.
type fakeBackend struct {
	srv          *httptest.Server
	likeCalls    atomic.Int32
	commentCalls atomic.Int32
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	backend := &fakeBackend{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": "1", "title": "A", "likes_count": 2},
			{"id": "2", "title": "B", "likes_count": 0}
		]`))
	})
	mux.HandleFunc("POST /posts/2/like", func(w http.ResponseWriter, r *http.Request) {
		backend.likeCalls.Add(1)
		_, _ = w.Write([]byte(`{"likes": 1}`))
	})
	mux.HandleFunc("POST /posts/1/comment", func(w http.ResponseWriter, r *http.Request) {
		backend.commentCalls.Add(1)
	})

	backend.srv = httptest.NewServer(mux)
	t.Cleanup(backend.srv.Close)
	return backend
}

func newTestFeed(t *testing.T, backend *fakeBackend, session *models.Session) (*FeedState, *SessionState) {
	t.Helper()
	gateway := api.NewClient(backend.srv.URL)
	state := NewSessionState(gateway)
	state.current = session
	return NewFeedState(gateway, NewInteractions(gateway, state)), state
}

func TestFeedLikeMergesTargetOnly(t *testing.T) {
	backend := newFakeBackend(t)
	feed, _ := newTestFeed(t, backend, &models.Session{UserID: "uid-1"})

	ctx := context.Background()
	if err := feed.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	likes, err := feed.Like(ctx, "2")
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	assert.Equal(t, 1, likes)

	posts := feed.Posts()
	assert.Equal(t, []string{"1", "2"}, []string{posts[0].ID, posts[1].ID})
	assert.Equal(t, 2, posts[0].LikesCount)
	assert.Equal(t, 1, posts[1].LikesCount)
}

func TestFeedCommentAppendsLocalComment(t *testing.T) {
	backend := newFakeBackend(t)
	feed, _ := newTestFeed(t, backend, &models.Session{UserID: "uid-1", Username: "alice"})

	ctx := context.Background()
	if err := feed.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	comment, err := feed.Comment(ctx, "1", "  well said  ")
	if err != nil {
		t.Fatalf("comment failed: %v", err)
	}
	assert.Equal(t, "well said", comment.Text)
	assert.Equal(t, "alice", comment.AuthorName())
	if _, err := time.Parse(time.RFC3339, comment.Timestamp); err != nil {
		t.Fatalf("timestamp is not RFC3339: %v", err)
	}

	posts := feed.Posts()
	assert.Len(t, posts[0].Comments, 1)
	assert.Empty(t, posts[1].Comments)
}

func TestFeedLikeWithoutSession(t *testing.T) {
	backend := newFakeBackend(t)
	feed, _ := newTestFeed(t, backend, nil)

	ctx := context.Background()
	_ = feed.Load(ctx)

	_, err := feed.Like(ctx, "2")
	assert.ErrorIs(t, err, api.ErrUnauthenticated)
	assert.Zero(t, backend.likeCalls.Load(), "no network call may run without a session")
}

func TestFeedCommentBlankText(t *testing.T) {
	backend := newFakeBackend(t)
	feed, _ := newTestFeed(t, backend, &models.Session{UserID: "uid-1"})

	ctx := context.Background()
	_ = feed.Load(ctx)

	_, err := feed.Comment(ctx, "1", "   ")
	assert.ErrorIs(t, err, api.ErrEmptyComment)
	assert.Zero(t, backend.commentCalls.Load())
}

func TestFeedLoadFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	gateway := api.NewClient(srv.URL)
	session := NewSessionState(gateway)
	feed := NewFeedState(gateway, NewInteractions(gateway, session))

	err := feed.Load(context.Background())
	assert.Error(t, err)
	assert.Empty(t, feed.Posts())
}
