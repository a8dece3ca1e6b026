package prompt

import (
	"regexp"
	"strings"
)

var (
	bracketed = regexp.MustCompile(`\[.*?\]`)
	tagged    = regexp.MustCompile(`<.*?>`)
)

// boilerplatePrefixes are lead-ins chat models like to add despite being
// told to output only the slogan. Checked in order; when one occurs the
// text is redefined as everything after its last occurrence.
var boilerplatePrefixes = []string{"Slogan:", "Here is a slogan:", "Answer:"}

// Sanitize strips model artefacts from generated copy: bracketed and
// angle-tagged annotations, straight quotes, and boilerplate prefixes.
// It never fails and is a no-op on clean input.
func Sanitize(raw string) string {
	text := bracketed.ReplaceAllString(raw, "")
	text = tagged.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, `"`, "")
	text = strings.ReplaceAll(text, "'", "")
	text = strings.TrimSpace(text)
	for _, prefix := range boilerplatePrefixes {
		if idx := strings.LastIndex(text, prefix); idx >= 0 {
			text = strings.TrimSpace(text[idx+len(prefix):])
		}
	}
	return text
}
