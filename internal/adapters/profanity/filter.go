// Package profanity implements core.ProfanityFilter with a word-list detector.
package profanity

import (
	"strings"

	goaway "github.com/TwiN/go-away"
)

type Filter struct {
	detector *goaway.ProfanityDetector
}

// New builds a filter over the default dictionary plus extra words.
func New(extra ...string) *Filter {
	d := goaway.NewProfanityDetector()
	words := make([]string, 0, len(extra))
	for _, w := range extra {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			words = append(words, w)
		}
	}
	if len(words) > 0 {
		profanities := append(append([]string{}, goaway.DefaultProfanities...), words...)
		d = d.WithCustomDictionary(profanities, goaway.DefaultFalsePositives, goaway.DefaultFalseNegatives)
	}
	return &Filter{detector: d}
}

func (f *Filter) IsProfane(text string) bool {
	return f.detector.IsProfane(text)
}
