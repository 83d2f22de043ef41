package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/render"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/services"
)

// showFeed mounts the home screen: one wholesale load, then the collection
// is rendered with the first post enlarged.
func (a *App) showFeed(ctx context.Context) {
	a.feed = services.NewFeedState(a.gateway, a.interactions)
	_ = a.feed.Load(ctx)

	posts := a.feed.Posts()
	if len(posts) == 0 {
		a.theme().Muted.Fprintln(a.out, "No blogs available.")
		return
	}

	for _, card := range render.FeedCards(posts) {
		a.printCard(card)
	}
}

func (a *App) printCard(card render.FeedCard) {
	theme := a.theme()
	post := card.Post

	if card.Featured {
		theme.Title.Fprintf(a.out, "══ %s ══\n", post.Title)
	} else {
		theme.Accent.Fprintf(a.out, "── %s ──\n", post.Title)
	}
	theme.Muted.Fprintf(a.out, "#%s by %s\n", post.ID, post.AuthorName())

	a.printMedia(post)
	a.printContent(post, card.Featured)
	a.printTags(post.Tags)

	fmt.Fprintf(a.out, "👍 %d   💬 %d\n\n", post.LikesCount, len(post.Comments))
}

func (a *App) printMedia(post models.Post) {
	theme := a.theme()
	for _, media := range render.PostMedia(post.Type, post.MediaURLs()) {
		switch media.Kind {
		case render.MediaDocument:
			theme.Link.Fprintf(a.out, "[view document] %s\n", media.URL)
		default:
			theme.Muted.Fprintf(a.out, "[%s] %s\n", media.Kind, media.URL)
		}
	}
}

func (a *App) printContent(post models.Post, full bool) {
	theme := a.theme()
	content := post.Content
	if !full && len(content) > 280 {
		content = content[:280] + "…"
	}

	for _, segment := range render.ContentSegments(post.ID, content) {
		if segment.Link {
			theme.Link.Fprint(a.out, segment.Text)
		} else {
			fmt.Fprint(a.out, segment.Text)
		}
	}
	fmt.Fprintln(a.out)
}

func (a *App) printTags(tags []string) {
	if len(tags) == 0 {
		return
	}
	theme := a.theme()
	theme.Tag.Fprintln(a.out, "["+strings.Join(tags, "] [")+"]")
}

// likePost and commentPost act on whichever screen holds the post: the
// mounted detail if it matches, else the mounted feed. The other screen's
// copy stays as-is until it reloads.
func (a *App) likePost(ctx context.Context, postID string) {
	theme := a.theme()

	var likes int
	var err error
	if a.detail != nil && a.detail.Post() != nil && a.detail.Post().ID == postID {
		likes, err = a.detail.Like(ctx)
	} else if a.feed != nil {
		likes, err = a.feed.Like(ctx, postID)
	} else {
		theme.Error.Fprintln(a.out, "Load the feed or open the post first.")
		return
	}

	if err != nil {
		theme.Error.Fprintln(a.out, errorMessage(err))
		return
	}
	theme.Success.Fprintf(a.out, "👍 %d likes\n", likes)
}

func (a *App) commentPost(ctx context.Context, postID, text string) {
	theme := a.theme()

	var err error
	if a.detail != nil && a.detail.Post() != nil && a.detail.Post().ID == postID {
		_, err = a.detail.Comment(ctx, text)
	} else if a.feed != nil {
		_, err = a.feed.Comment(ctx, postID, text)
	} else {
		theme.Error.Fprintln(a.out, "Load the feed or open the post first.")
		return
	}

	if err != nil {
		theme.Error.Fprintln(a.out, errorMessage(err))
		return
	}
	theme.Success.Fprintln(a.out, "Comment posted.")
}
