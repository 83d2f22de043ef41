package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/services"
)

// showProfile mounts the profile screen: the signed-in user's own posts.
func (a *App) showProfile(ctx context.Context) {
	theme := a.theme()

	profile := services.NewProfileState(a.gateway, a.session)
	if err := profile.Load(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			theme.Error.Fprintln(a.out, errorMessage(err))
			return
		}
		// Background load failures degrade to an empty list.
	}

	user := a.session.Current()
	theme.Title.Fprintf(a.out, "Your Posts — %s\n", user.Username)

	posts := profile.Posts()
	if len(posts) == 0 {
		theme.Muted.Fprintln(a.out, "Nothing here yet. Try: compose")
		return
	}

	for _, post := range posts {
		theme.Accent.Fprintf(a.out, "── %s ──\n", post.Title)
		theme.Muted.Fprintf(a.out, "#%s\n", post.ID)
		a.printMedia(post)
		a.printContent(post, false)
		a.printTags(post.Tags)
		fmt.Fprintln(a.out)
	}
}
