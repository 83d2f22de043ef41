package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/services"
)

// compose mounts the composition screen: a fresh draft every time, filled in
// form by form, published as one multipart request. Leaving the screen
// discards the draft.
func (a *App) compose(ctx context.Context) {
	theme := a.theme()
	if !a.session.Authenticated() {
		theme.Error.Fprintln(a.out, "You must be logged in to post.")
		return
	}

	composer := services.NewComposer(a.gateway, a.session)

	composer.SetTitle(a.readLine("Title"))
	composer.SetContent(a.readLine("Content"))

	if postType := a.readLine("Type (TextWithImage/Video/Audio/Document, empty keeps TextWithImage)"); len(postType) > 0 {
		if err := composer.SetType(postType); err != nil {
			theme.Error.Fprintln(a.out, err.Error())
			return
		}
	}

	// Tags, one per line; duplicates are dropped on entry.
	for {
		tag := a.readLine("Tag (empty to continue)")
		if len(tag) == 0 {
			break
		}
		composer.AddTag(tag)
	}

	// File paths, one per line; each selection appends to the staged list.
	theme.Muted.Fprintf(a.out, "Picker filter: %s\n", composer.Accept())
	for {
		path := a.readLine("Attach file (empty to continue)")
		if len(path) == 0 {
			break
		}
		if err := composer.AddFiles(path); err != nil {
			theme.Error.Fprintln(a.out, err.Error())
			continue
		}
		files := composer.Draft().Files
		staged := files[len(files)-1]
		theme.Muted.Fprintf(a.out, "  staged %s (%s, %d bytes)\n", staged.Name, staged.Kind, staged.Size)
	}

	draft := composer.Draft()
	theme.Accent.Fprintf(a.out, "Publishing %q as %s with %d file(s), tags: %s\n",
		draft.Title, draft.Type, len(draft.Files), strings.Join(draft.Tags, ", "))

	post, err := composer.Submit(ctx)
	if err != nil {
		theme.Error.Fprintln(a.out, errorMessage(err))
		return
	}

	theme.Success.Fprintln(a.out, "Blog posted successfully!")
	fmt.Fprintf(a.out, "New post id: %s\n", post.ID)
}
