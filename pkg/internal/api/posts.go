package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.getJSON(ctx, "/posts", &posts, "Failed to fetch posts"); err != nil {
		return nil, fmt.Errorf("failed to fetch the post feed: %v", err)
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	if err := c.getJSON(ctx, "/posts/"+id, &post, "Failed to fetch post"); err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == fiber.StatusNotFound {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("failed to fetch post %s: %v", id, err)
	}
	return post, nil
}

func (c *Client) ListUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	var data struct {
		Posts []models.Post `json:"posts"`
	}
	if err := c.getJSON(ctx, "/users/"+userID+"/posts", &data, "Failed to fetch posts"); err != nil {
		return nil, fmt.Errorf("failed to fetch posts of user %s: %v", userID, err)
	}
	return data.Posts, nil
}

func (c *Client) LikePost(ctx context.Context, id, userID string) (int, error) {
	payload := map[string]any{"user_id": userID}

	var data struct {
		Likes int `json:"likes"`
	}
	if err := c.postJSON(ctx, "/posts/"+id+"/like", payload, &data, "Failed to like post"); err != nil {
		return 0, fmt.Errorf("failed to like post %s: %v", id, err)
	}
	return data.Likes, nil
}

func (c *Client) CommentPost(ctx context.Context, id, userID, text string) error {
	payload := map[string]any{"user_id": userID, "text": text}

	// A 2xx is all that matters here; the body is discarded.
	if err := c.postJSON(ctx, "/posts/"+id+"/comment", payload, nil, "Failed to post comment"); err != nil {
		return fmt.Errorf("failed to comment on post %s: %v", id, err)
	}
	return nil
}

// CreatePostForm is the multipart payload of a new post.
type CreatePostForm struct {
	Title     string
	Content   string
	AuthorUID string
	Type      string
	Language  string
	Tags      []string
	Files     []models.DraftFile
}

func (c *Client) CreatePost(ctx context.Context, form CreatePostForm) (models.Post, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":      form.Title,
		"content":    form.Content,
		"author_uid": form.AuthorUID,
		"post_type":  form.Type,
		"language":   form.Language,
	}
	rawTags, _ := jsoniter.Marshal(form.Tags)
	fields["tags"] = string(rawTags)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return models.Post{}, fmt.Errorf("failed to build post form: %v", err)
		}
	}

	for _, file := range form.Files {
		if err := attachFile(writer, file); err != nil {
			return models.Post{}, err
		}
	}

	if err := writer.Close(); err != nil {
		return models.Post{}, fmt.Errorf("failed to build post form: %v", err)
	}

	url := c.endpoint("/posts")
	log.Debug().Str("url", url).Int("files", len(form.Files)).Msg("Uploading new post...")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return models.Post{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to upload post: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Post{}, err
	}

	if resp.StatusCode >= fiber.StatusBadRequest {
		return models.Post{}, newRequestError(resp.StatusCode, body, "An unexpected error occurred.")
	}

	var post models.Post
	if err := jsoniter.Unmarshal(body, &post); err != nil {
		return models.Post{}, fmt.Errorf("failed to parse created post: %v", err)
	}
	return post, nil
}

func attachFile(writer *multipart.Writer, file models.DraftFile) error {
	in, err := os.Open(file.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %v", file.Name, err)
	}
	defer in.Close()

	part, err := writer.CreateFormFile("files", file.Name)
	if err != nil {
		return fmt.Errorf("failed to attach %s: %v", file.Name, err)
	}
	if _, err := io.Copy(part, in); err != nil {
		return fmt.Errorf("failed to attach %s: %v", file.Name, err)
	}
	return nil
}
