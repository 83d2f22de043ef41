package render

import (
	"github.com/samber/lo"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

// FeedCard pairs a post with its treatment on the home screen. Featured is
// positional: the first post of a loaded feed, never a property of the post.
type FeedCard struct {
	Post     models.Post
	Featured bool
}

func FeedCards(posts []models.Post) []FeedCard {
	return lo.Map(posts, func(post models.Post, idx int) FeedCard {
		return FeedCard{Post: post, Featured: idx == 0}
	})
}
