package render

import (
	"github.com/samber/lo"

	"github.com/chyrp-pro/chyrp-client/pkg/internal/models"
)

type MediaKind string

const (
	MediaImage    = MediaKind("image")
	MediaVideo    = MediaKind("video")
	MediaAudio    = MediaKind("audio")
	MediaDocument = MediaKind("document")
)

// Media is one renderable attachment descriptor.
type Media struct {
	Kind MediaKind
	URL  string
	MIME string
}

// PostMedia maps a post's declared type and attachment URLs to descriptors,
// one per URL in order. An unrecognized type or an empty URL list renders
// nothing.
func PostMedia(postType string, urls []string) []Media {
	if len(urls) == 0 {
		return nil
	}

	var kind MediaKind
	var mime string
	switch postType {
	case models.PostTypeTextWithImage:
		kind = MediaImage
	case models.PostTypeVideo:
		kind, mime = MediaVideo, "video/mp4"
	case models.PostTypeAudio:
		kind, mime = MediaAudio, "audio/mpeg"
	case models.PostTypeDocument:
		kind = MediaDocument
	default:
		return nil
	}

	return lo.Map(urls, func(url string, _ int) Media {
		return Media{Kind: kind, URL: url, MIME: mime}
	})
}
