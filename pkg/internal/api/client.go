package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

// Client talks to the Chyrp Pro backend. It holds no state besides the base
// URL; every screen shares one instance.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

func (c *Client) getJSON(ctx context.Context, path string, out any, fallback string) error {
	url := c.endpoint(path)
	log.Debug().Str("url", url).Msg("Fetching from backend...")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= fiber.StatusBadRequest {
		return newRequestError(resp.StatusCode, body, fallback)
	}

	return jsoniter.Unmarshal(body, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, fallback string) error {
	url := c.endpoint(path)
	log.Debug().Str("url", url).Msg("Posting to backend...")

	raw, _ := jsoniter.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= fiber.StatusBadRequest {
		return newRequestError(resp.StatusCode, body, fallback)
	}

	if out == nil {
		return nil
	}
	return jsoniter.Unmarshal(body, out)
}
