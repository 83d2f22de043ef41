package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

// ProfileState lists the signed-in user's own posts.
type ProfileState struct {
	gateway *api.Client
	session *SessionState

	posts []models.Post
}

func NewProfileState(gateway *api.Client, session *SessionState) *ProfileState {
	return &ProfileState{gateway: gateway, session: session}
}

func (p *ProfileState) Load(ctx context.Context) error {
	user := p.session.Current()
	if user == nil {
		return api.ErrUnauthenticated
	}

	posts, err := p.gateway.ListUserPosts(ctx, user.UserID)
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when loading your posts.")
		p.posts = nil
		return err
	}

	p.posts = posts
	return nil
}

func (p *ProfileState) Posts() []models.Post {
	return p.posts
}
