package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/api"
	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

// Composer accumulates a draft post and submits it as one multipart request.
// The draft is discarded in full on success.
type Composer struct {
	gateway *api.Client
	session *SessionState

	draft models.Draft
}

func NewComposer(gateway *api.Client, session *SessionState) *Composer {
	c := &Composer{gateway: gateway, session: session}
	c.Reset()
	return c
}

func (c *Composer) Draft() models.Draft {
	return c.draft
}

func (c *Composer) SetTitle(title string) {
	c.draft.Title = title
}

func (c *Composer) SetContent(content string) {
	c.draft.Content = content
}

// SetType switches the declared post type. The type is carried explicitly in
// the draft; it is not inferred from which attachment action ran last.
func (c *Composer) SetType(postType string) error {
	if !lo.Contains(models.PostTypes, postType) {
		return fmt.Errorf("unknown post type: %s", postType)
	}
	c.draft.Type = postType
	return nil
}

// Accept is the file picker filter for the draft's current type.
func (c *Composer) Accept() string {
	return models.PostTypeAccept[c.draft.Type]
}

// AddFiles stages local files, appending to whatever is already selected.
// The detected kind is a display label only; it is never checked against the
// draft's declared type.
func (c *Composer) AddFiles(paths ...string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stage %s: %v", path, err)
		}

		kind := "unknown"
		if matched, err := filetype.MatchFile(path); err == nil && matched != filetype.Unknown {
			kind = matched.MIME.Value
		}

		c.draft.Files = append(c.draft.Files, models.DraftFile{
			Name: filepath.Base(path),
			Path: path,
			Size: info.Size(),
			Kind: kind,
		})
	}
	return nil
}

// AddTag trims and adds a tag, suppressing duplicates at the point of
// addition. Blank input is ignored.
func (c *Composer) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if len(tag) == 0 || lo.Contains(c.draft.Tags, tag) {
		return
	}
	c.draft.Tags = append(c.draft.Tags, tag)
}

func (c *Composer) RemoveTag(tag string) {
	c.draft.Tags = lo.Filter(c.draft.Tags, func(item string, _ int) bool {
		return item != tag
	})
}

// Submit publishes the draft. Without a session it fails before any network
// traffic. On success the draft resets and the caller should navigate away.
func (c *Composer) Submit(ctx context.Context) (models.Post, error) {
	user := c.session.Current()
	if user == nil {
		return models.Post{}, api.ErrUnauthenticated
	}

	if err := validate.Struct(c.draft); err != nil {
		return models.Post{}, err
	}

	post, err := c.gateway.CreatePost(ctx, api.CreatePostForm{
		Title:     c.draft.Title,
		Content:   c.draft.Content,
		AuthorUID: user.UserID,
		Type:      c.draft.Type,
		Language:  DetectLanguage(c.draft.Content),
		Tags:      c.draft.Tags,
		Files:     c.draft.Files,
	})
	if err != nil {
		return models.Post{}, err
	}

	log.Info().Str("id", post.ID).Msg("Published new post.")
	c.Reset()
	return post, nil
}

func (c *Composer) Reset() {
	c.draft = models.Draft{Type: models.PostTypeTextWithImage}
}
