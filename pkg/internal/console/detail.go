package console

import (
	"context"
	"fmt"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/services"
)

// showDetail mounts the single-post screen with its own like count and
// comment list, seeded from one fetch.
func (a *App) showDetail(ctx context.Context, postID string) {
	theme := a.theme()

	a.detail = services.NewDetailState(a.gateway, a.interactions)
	if err := a.detail.Load(ctx, postID); err != nil {
		theme.Error.Fprintln(a.out, errorMessage(err))
		return
	}

	post := a.detail.Post()
	theme.Title.Fprintf(a.out, "══ %s ══\n", post.Title)
	theme.Muted.Fprintf(a.out, "by %s\n", post.AuthorName())

	a.printMedia(*post)
	a.printContent(*post, true)
	a.printTags(post.Tags)
	fmt.Fprintf(a.out, "👍 %d likes\n", post.LikesCount)

	theme.Accent.Fprintln(a.out, "Comments")
	if len(post.Comments) == 0 {
		theme.Muted.Fprintln(a.out, "No comments yet.")
		return
	}
	for _, comment := range post.Comments {
		fmt.Fprintf(a.out, "  %s: %s\n", theme.Accent.Sprint(comment.AuthorName()), comment.Text)
		theme.Muted.Fprintf(a.out, "  %s\n", comment.Timestamp)
	}
}
