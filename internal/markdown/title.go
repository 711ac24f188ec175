package markdown

import "strings"

// Title returns the text of the first ATX heading in the document, or the
// empty string when the document has none. The scan is deliberately naive
// and does not exclude fenced code blocks.
func Title(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}
