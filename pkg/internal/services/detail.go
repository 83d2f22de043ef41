package services

import (
	"context"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

// DetailState is the single-post screen's own copy of one post. A like or
// comment registered here is invisible to any feed until that feed reloads.
type DetailState struct {
	gateway      *api.Client
	interactions *Interactions

	post *models.Post
}

func NewDetailState(gateway *api.Client, interactions *Interactions) *DetailState {
	return &DetailState{gateway: gateway, interactions: interactions}
}

func (d *DetailState) Load(ctx context.Context, id string) error {
	post, err := d.gateway.GetPost(ctx, id)
	if err != nil {
		d.post = nil
		return err
	}

	d.post = &post
	return nil
}

func (d *DetailState) Post() *models.Post {
	return d.post
}

// Patch implements PostScope over the single loaded post.
func (d *DetailState) Patch(id string, fn func(*models.Post)) {
	if d.post != nil && d.post.ID == id {
		fn(d.post)
	}
}

func (d *DetailState) Like(ctx context.Context) (int, error) {
	if d.post == nil {
		return 0, api.ErrNotFound
	}
	return d.interactions.Like(ctx, d.post.ID, d)
}

func (d *DetailState) Comment(ctx context.Context, text string) (models.Comment, error) {
	if d.post == nil {
		return models.Comment{}, api.ErrNotFound
	}
	return d.interactions.Comment(ctx, d.post.ID, text, d)
}
