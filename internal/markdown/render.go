// Package markdown renders the small Markdown subset used for site content
// into HTML block fragments. The dialect is deliberately minimal: ATX
// headings, fenced and indented code blocks, flat ordered/unordered lists,
// single-line paragraphs, and flat inline emphasis/code/links.
package markdown

import (
	"fmt"
	"html"
	"strings"
)

type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// scanState is the open-block state for one Render call. At most one list
// kind is open at a time, and fenced mode suppresses all other markers.
type scanState struct {
	out      []string
	inFence  bool
	fenceBuf []string
	list     listKind
}

func (st *scanState) closeList() {
	switch st.list {
	case listUnordered:
		st.out = append(st.out, "</ul>")
	case listOrdered:
		st.out = append(st.out, "</ol>")
	}
	st.list = listNone
}

func (st *scanState) openList(kind listKind, openTag string) {
	if st.list != kind {
		st.closeList()
		st.out = append(st.out, openTag)
		st.list = kind
	}
}

// Render converts a Markdown document into HTML block fragments joined by
// newlines. Each call starts from a fresh scan state.
func Render(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	st := &scanState{}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")

		// Fence delimiters toggle code mode; the language annotation on the
		// opening fence is accepted but never emitted.
		if strings.HasPrefix(line, "```") {
			if st.inFence {
				st.out = append(st.out, "<pre><code>")
				if len(st.fenceBuf) > 0 {
					st.out = append(st.out, html.EscapeString(strings.Join(st.fenceBuf, "\n")))
				}
				st.out = append(st.out, "</code></pre>")
				st.fenceBuf = st.fenceBuf[:0]
				st.inFence = false
			} else {
				st.inFence = true
			}
			continue
		}
		if st.inFence {
			st.fenceBuf = append(st.fenceBuf, line)
			continue
		}

		if strings.HasPrefix(line, "#") {
			st.closeList()
			level := headingLevel(line)
			body := strings.TrimSpace(line[level:])
			st.out = append(st.out, fmt.Sprintf("<h%d>%s</h%d>", level, RenderInline(body), level))
			continue
		}

		if item, ok := orderedItem(line); ok {
			st.openList(listOrdered, "<ol>")
			st.out = append(st.out, "<li>"+RenderInline(item)+"</li>")
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") {
			st.openList(listUnordered, "<ul>")
			st.out = append(st.out, "<li>"+RenderInline(strings.TrimSpace(trimmed[2:]))+"</li>")
			continue
		}

		if trimmed == "" {
			st.closeList()
			st.out = append(st.out, "")
			continue
		}

		if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
			st.closeList()
			block, n := collectIndented(lines, i)
			st.out = append(st.out, "<pre><code>")
			st.out = append(st.out, html.EscapeString(strings.Join(block, "\n")))
			st.out = append(st.out, "</code></pre>")
			i += n - 1
			continue
		}

		st.closeList()
		st.out = append(st.out, "<p>"+RenderInline(trimmed)+"</p>")
	}

	st.closeList()
	return strings.Join(st.out, "\n")
}

// headingLevel counts the leading '#' run, clamped to h6.
func headingLevel(line string) int {
	n := len(line) - len(strings.TrimLeft(line, "#"))
	if n > 6 {
		n = 6
	}
	return n
}

// orderedItem reports whether the line, after stripping leading whitespace,
// matches "<digits>. <text>" and returns the trimmed item text. A marker
// with nothing after it is not a list item.
func orderedItem(line string) (string, bool) {
	s := strings.TrimLeft(line, " \t")
	j := 0
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == 0 || j+1 >= len(s) || s[j] != '.' || s[j+1] != ' ' {
		return "", false
	}
	item := strings.TrimSpace(s[j+2:])
	if item == "" {
		return "", false
	}
	return item, true
}

// collectIndented consumes the run of indented lines starting at start,
// stripping exactly one indentation unit (four spaces or one tab) from each.
// It returns the collected lines and how many input lines were consumed.
func collectIndented(lines []string, start int) ([]string, int) {
	var buf []string
	i := start
	for i < len(lines) {
		l := strings.TrimSuffix(lines[i], "\r")
		if strings.HasPrefix(l, "    ") {
			buf = append(buf, l[4:])
		} else if strings.HasPrefix(l, "\t") {
			buf = append(buf, l[1:])
		} else {
			break
		}
		i++
	}
	return buf, i - start
}
