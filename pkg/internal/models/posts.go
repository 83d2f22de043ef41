package models

const (
	PostTypeTextWithImage = "TextWithImage"
	PostTypeVideo         = "Video"
	PostTypeAudio         = "Audio"
	PostTypeDocument      = "Document"
)

// PostTypes lists every declared media type a post can carry.
var PostTypes = []string{
	PostTypeTextWithImage,
	PostTypeVideo,
	PostTypeAudio,
	PostTypeDocument,
}

// PostTypeAccept maps a declared type to the file picker filter shown while
// composing. The filter is presentation only and enforces nothing.
var PostTypeAccept = map[string]string{
	PostTypeTextWithImage: "image/*",
	PostTypeVideo:         "video/*",
	PostTypeAudio:         "audio/*",
	PostTypeDocument:      ".pdf,.doc,.docx,.txt,.ppt,.pptx",
}

type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`

	Author    string `json:"author"`
	AuthorUID string `json:"author_uid"`

	FileURLs []string `json:"file_urls"`
	// Older posts carry a single attachment under one of these keys instead.
	FileURL  string `json:"file_url"`
	ImageURL string `json:"image_url"`

	Tags       []string  `json:"tags"`
	LikesCount int       `json:"likes_count"`
	Comments   []Comment `json:"comments"`
}

// MediaURLs folds the legacy single-attachment fields into the ordered
// attachment list. Zero, one or many entries are all valid.
func (p Post) MediaURLs() []string {
	if len(p.FileURLs) > 0 {
		return p.FileURLs
	}
	if len(p.FileURL) > 0 {
		return []string{p.FileURL}
	}
	if len(p.ImageURL) > 0 {
		return []string{p.ImageURL}
	}
	return nil
}

func (p Post) AuthorName() string {
	if len(p.Author) > 0 {
		return p.Author
	}
	return p.AuthorUID
}
