package models

// DraftFile is a staged local file. Kind is a detected media label for
// display; it is never checked against the draft's declared type.
type DraftFile struct {
	Name string
	Path string
	Size int64
	Kind string
}

// Draft accumulates an unsaved composition. It is discarded wholesale on a
// successful submit or when the composer screen is left.
type Draft struct {
	Title   string `validate:"required,max=1024"`
	Content string `validate:"required"`
	Type    string `validate:"required,oneof=TextWithImage Video Audio Document"`
	Tags    []string
	Files   []DraftFile
}
