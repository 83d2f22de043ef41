package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

// FeedState is the home screen's copy of the post collection. It reconciles
// with the backend at load and after confirmed actions, never by re-fetch.
type FeedState struct {
	gateway      *api.Client
	interactions *Interactions

	posts []models.Post
}

func NewFeedState(gateway *api.Client, interactions *Interactions) *FeedState {
	return &FeedState{gateway: gateway, interactions: interactions}
}

// Load replaces the whole collection with the backend's answer. On failure
// the feed degrades to empty rather than keeping stale posts.
func (f *FeedState) Load(ctx context.Context) error {
	posts, err := f.gateway.ListPosts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when loading the feed.")
		f.posts = nil
		return err
	}

	f.posts = posts
	return nil
}

func (f *FeedState) Posts() []models.Post {
	return f.posts
}

// Patch implements PostScope over the loaded collection.
func (f *FeedState) Patch(id string, fn func(*models.Post)) {
	for idx := range f.posts {
		if f.posts[idx].ID == id {
			fn(&f.posts[idx])
			return
		}
	}
}

func (f *FeedState) Like(ctx context.Context, postID string) (int, error) {
	return f.interactions.Like(ctx, postID, f)
}

func (f *FeedState) Comment(ctx context.Context, postID, text string) (models.Comment, error) {
	return f.interactions.Comment(ctx, postID, text, f)
}
