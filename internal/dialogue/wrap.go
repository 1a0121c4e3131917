package dialogue

import "strings"

// Dialogue box placement on the text console.
const (
	BoxX      = 2
	BoxY      = 18
	BoxWidth  = 28
	BoxHeight = 6
	LineWidth = BoxWidth - 2
)

// Wrap breaks s into lines of at most width runes, splitting on spaces.
// Words longer than width are cut.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) > width:
			lines = append(lines, string(line))
			line = w
		default:
			line = append(append(line, ' '), w...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
