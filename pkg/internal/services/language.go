package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var detectorOnce sync.Once
var detector lingua.LanguageDetector

// DetectLanguage guesses the ISO 639-1 code of a draft's content so the
// backend can store it alongside the post. Returns "unknown" when no
// candidate fits.
func DetectLanguage(content string) string {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Russian,
				lingua.Chinese,
				lingua.Japanese,
				lingua.Korean,
			).
			Build()
	})

	if language, ok := detector.DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return "unknown"
}
