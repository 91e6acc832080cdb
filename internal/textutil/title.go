package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// TitleCase produces a display-friendly title from free-form text, collapsing
// separator runs into single spaces. Used as a fallback when a collaborator
// supplies no display name.
func TitleCase(s string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range s {
		switch {
		case r == '_' || r == '.' || r == '-':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		default:
			cleaned.WriteRune(r)
			prevSpace = false
		}
	}
	out := strings.Join(strings.Fields(cleaned.String()), " ")
	if out == "" {
		return ""
	}
	return titleCaser.String(out)
}
