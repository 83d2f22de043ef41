package render

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"

	localCache "github.com/chyrp-pro/chyrp-client/pkg/internal/cache"
)

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// Segment is a run of post content; Link marks a bare URL that should be
// rendered as a followable link.
type Segment struct {
	Text string
	Link bool
}

// SplitLinks cuts content into text and link segments, preserving order and
// the full original text.
func SplitLinks(content string) []Segment {
	var segments []Segment
	cursor := 0
	for _, match := range urlPattern.FindAllStringIndex(content, -1) {
		if match[0] > cursor {
			segments = append(segments, Segment{Text: content[cursor:match[0]]})
		}
		segments = append(segments, Segment{Text: content[match[0]:match[1]], Link: true})
		cursor = match[1]
	}
	if cursor < len(content) {
		segments = append(segments, Segment{Text: content[cursor:]})
	}
	return segments
}

// ContentSegments is SplitLinks memoized per post for the page lifetime, so
// re-rendering the feed after a like or comment does not redo the scan.
func ContentSegments(postID, content string) []Segment {
	if localCache.S == nil || len(postID) == 0 {
		return SplitLinks(content)
	}

	cacheManager := cache.New[[]Segment](localCache.S)
	ctx := context.Background()

	// Screens render the same post at different lengths (truncated card vs
	// full detail), so the length is part of the key.
	key := fmt.Sprintf("autolink#%s#%d", postID, len(content))
	if segments, err := cacheManager.Get(ctx, key); err == nil {
		return segments
	}

	segments := SplitLinks(content)
	_ = cacheManager.Set(ctx, key, segments, store.WithExpiration(10*time.Minute))
	return segments
}
