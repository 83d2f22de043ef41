package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestLoginSurfacesDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Wrong password for this account"}`))
	}))

	_, err := client.Login(context.Background(), "a@b.c", "nope")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	assert.Equal(t, http.StatusUnauthorized, reqErr.StatusCode)
	assert.Equal(t, "Wrong password for this account", reqErr.Detail)
}

func TestSignupFallbackMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	_, err := client.Signup(context.Background(), "alice", "a@b.c", "secret123")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	assert.Equal(t, "Signup failed", reqErr.Detail)
}

func TestSignupBuildsSession(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signup", r.URL.Path)
		_, _ = w.Write([]byte(`{"idToken": "tok-1", "localId": "uid-1"}`))
	}))

	session, err := client.Signup(context.Background(), "alice", "a@b.c", "secret123")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	assert.Equal(t, models.Session{Username: "alice", Email: "a@b.c", IDToken: "tok-1", UserID: "uid-1"}, session)
}

func TestListPosts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": "1", "title": "A", "likes_count": 2}, {"id": "2", "title": "B"}]`))
	}))

	posts, err := client.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	assert.Len(t, posts, 2)
	assert.Equal(t, "A", posts[0].Title)
	assert.Equal(t, 2, posts[0].LikesCount)
}

func TestGetPostNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	_, err := client.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUserPostsUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/uid-1/posts", r.URL.Path)
		_, _ = w.Write([]byte(`{"posts": [{"id": "9", "title": "Mine"}]}`))
	}))

	posts, err := client.ListUserPosts(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	assert.Len(t, posts, 1)
	assert.Equal(t, "Mine", posts[0].Title)
}

func TestLikePost(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/2/like", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"user_id": "uid-1"}`, string(body))
		_, _ = w.Write([]byte(`{"likes": 1}`))
	}))

	likes, err := client.LikePost(context.Background(), "2", "uid-1")
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	assert.Equal(t, 1, likes)
}

func TestCommentPostIgnoresBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/2/comment", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.CommentPost(context.Background(), "2", "uid-1", "nice one")
	assert.NoError(t, err)
}

func TestCreatePostMultipart(t *testing.T) {
	fileA := writeTempFile(t, "a.png", "png-bytes")
	fileB := writeTempFile(t, "b.png", "more-bytes")

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart body: %v", err)
		}
		assert.Equal(t, "My Post", r.FormValue("title"))
		assert.Equal(t, "hello", r.FormValue("content"))
		assert.Equal(t, "uid-1", r.FormValue("author_uid"))
		assert.Equal(t, models.PostTypeTextWithImage, r.FormValue("post_type"))
		assert.JSONEq(t, `["go", "blogging"]`, r.FormValue("tags"))

		files := r.MultipartForm.File["files"]
		if assert.Len(t, files, 2) {
			assert.Equal(t, "a.png", files[0].Filename)
			assert.Equal(t, "b.png", files[1].Filename)
		}

		_, _ = w.Write([]byte(`{"id": "42", "title": "My Post"}`))
	}))

	post, err := client.CreatePost(context.Background(), CreatePostForm{
		Title:     "My Post",
		Content:   "hello",
		AuthorUID: "uid-1",
		Type:      models.PostTypeTextWithImage,
		Language:  "en",
		Tags:      []string{"go", "blogging"},
		Files: []models.DraftFile{
			{Name: "a.png", Path: fileA},
			{Name: "b.png", Path: fileB},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	assert.Equal(t, "42", post.ID)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := t.TempDir() + "/" + name
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
