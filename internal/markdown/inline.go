package markdown

import (
	"html"
	"strings"
)

// RenderInline converts a single line of Markdown text into HTML.
// The raw text is HTML-escaped first, then code spans, bold, italic and
// links are substituted in that fixed order. Substitution is flat:
// delimiters never nest and unmatched delimiters are left alone.
func RenderInline(text string) string {
	t := html.EscapeString(text)
	t = replaceDelimited(t, "`", "<code>", "</code>")
	t = replaceDelimited(t, "**", "<strong>", "</strong>")
	t = replaceDelimited(t, "*", "<em>", "</em>")
	return replaceLinks(t)
}

// replaceDelimited splits s on delim and wraps every second segment in the
// given tags. Fewer than three parts means no matched pair. An even part
// count means the last wrapped segment would be unterminated, so the whole
// substitution is abandoned rather than corrupting the line.
func replaceDelimited(s, delim, openTag, closeTag string) string {
	parts := strings.Split(s, delim)
	if len(parts) < 3 {
		return s
	}
	if len(parts)%2 == 0 {
		return s
	}
	var b strings.Builder
	wrapped := false
	for _, part := range parts {
		if wrapped {
			b.WriteString(openTag)
			b.WriteString(part)
			b.WriteString(closeTag)
		} else {
			b.WriteString(part)
		}
		wrapped = !wrapped
	}
	return b.String()
}

// replaceLinks rewrites [text](url) spans into anchor tags. Text and URL
// are emitted verbatim; nested brackets or parentheses are not supported.
// A '[' that does not begin a complete link is kept literally.
func replaceLinks(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '[' {
			if j := strings.Index(s[i+1:], "]"); j >= 0 {
				j += i + 1
				if j+1 < len(s) && s[j+1] == '(' {
					if k := strings.Index(s[j+2:], ")"); k >= 0 {
						k += j + 2
						b.WriteString(`<a href="`)
						b.WriteString(s[j+2 : k])
						b.WriteString(`">`)
						b.WriteString(s[i+1 : j])
						b.WriteString("</a>")
						i = k + 1
						continue
					}
				}
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
