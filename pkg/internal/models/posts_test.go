package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaURLsLegacyFallback(t *testing.T) {
	assert.Empty(t, Post{}.MediaURLs())

	many := Post{FileURLs: []string{"a", "b"}, FileURL: "legacy"}
	assert.Equal(t, []string{"a", "b"}, many.MediaURLs())

	single := Post{FileURL: "legacy"}
	assert.Equal(t, []string{"legacy"}, single.MediaURLs())

	image := Post{ImageURL: "older"}
	assert.Equal(t, []string{"older"}, image.MediaURLs())
}

func TestAuthorNameFallback(t *testing.T) {
	assert.Equal(t, "alice", Post{Author: "alice", AuthorUID: "uid-1"}.AuthorName())
	assert.Equal(t, "uid-1", Post{AuthorUID: "uid-1"}.AuthorName())

	assert.Equal(t, "alice", Comment{Username: "alice", UserID: "uid-1"}.AuthorName())
	assert.Equal(t, "uid-1", Comment{UserID: "uid-1"}.AuthorName())
}
