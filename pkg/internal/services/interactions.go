package services

import (
	"context"
	"strings"
	"time"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

// PostScope is the local post view a screen hands to the interaction
// service: a whole collection (feed, profile) or a single item (detail).
type PostScope interface {
	// Patch applies fn to the post matching id and leaves every other post,
	// and the ordering, untouched. A miss is a no-op.
	Patch(id string, fn func(*models.Post))
}

// Interactions is the one shared implementation of like and comment. Local
// state is only touched after the backend confirms the action.
type Interactions struct {
	gateway *api.Client
	session *SessionState
}

func NewInteractions(gateway *api.Client, session *SessionState) *Interactions {
	return &Interactions{gateway: gateway, session: session}
}

// Like registers a like and merges the returned count into the scope. Likes
// only ever grow here; deduplication of repeat likes is the backend's call.
func (i *Interactions) Like(ctx context.Context, postID string, scope PostScope) (int, error) {
	user := i.session.Current()
	if user == nil {
		return 0, api.ErrUnauthenticated
	}

	likes, err := i.gateway.LikePost(ctx, postID, user.UserID)
	if err != nil {
		return 0, err
	}

	scope.Patch(postID, func(post *models.Post) {
		post.LikesCount = likes
	})
	return likes, nil
}

// Comment submits text and appends a locally built comment to the scope. The
// timestamp is the client clock; the backend's value wins on the next load.
func (i *Interactions) Comment(ctx context.Context, postID, text string, scope PostScope) (models.Comment, error) {
	user := i.session.Current()
	if user == nil {
		return models.Comment{}, api.ErrUnauthenticated
	}
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return models.Comment{}, api.ErrEmptyComment
	}

	if err := i.gateway.CommentPost(ctx, postID, user.UserID, text); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		UserID:    user.UserID,
		Username:  user.Username,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	scope.Patch(postID, func(post *models.Post) {
		post.Comments = append(post.Comments, comment)
	})
	return comment, nil
}
