package layout

import "strings"

// wrapText greedily wraps s into lines of at most width runes, splitting on
// whitespace. A word longer than the width gets a line of its own rather
// than being broken mid-word.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len([]rune(current))+1+len([]rune(word)) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
