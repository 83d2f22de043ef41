package api

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var (
	ErrUnauthenticated = errors.New("you must be logged in to do that")
	ErrNotFound        = errors.New("post not found")
	ErrEmptyComment    = errors.New("comment text cannot be blank")
)

// RequestError is any non-2xx answer from the backend, carrying the `detail`
// message the backend attaches to failures when it has one.
type RequestError struct {
	StatusCode int
	Detail     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
}

func newRequestError(status int, body []byte, fallback string) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = jsoniter.Unmarshal(body, &payload)
	return &RequestError{
		StatusCode: status,
		Detail:     lo.Ternary(len(payload.Detail) > 0, payload.Detail, fallback),
	}
}
