package site

import (
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
)

// IndexEntry is one row in the generated index listing. Href is the
// forward-slash relative HTML path and doubles as the sort key, so the
// listing order always matches the link targets.
type IndexEntry struct {
	Href  string
	Title string
}

// buildIndex writes index.html at the destination domain root. The body is
// the rendered __index__.md when present, a placeholder heading otherwise,
// followed by a sorted listing of every generated page.
func (b *Builder) buildIndex(srcDomain, dstDomain string) error {
	body := "<h2>Index</h2>"
	if raw, err := os.ReadFile(filepath.Join(srcDomain, indexFileName)); err == nil {
		body = markdown.Render(string(raw))
	}

	entries, err := collectIndexEntries(srcDomain)
	if err != nil {
		return err
	}

	listing := []string{"<h2>Posts</h2>", "<ul>"}
	for _, e := range entries {
		listing = append(listing, `<li><a href="`+e.Href+`">`+html.EscapeString(e.Title)+"</a></li>")
	}
	listing = append(listing, "</ul>")

	content := body + "\n" + strings.Join(listing, "\n")
	page, err := b.composer.Compose(b.cfg.SiteTitle+" — Index", content, "index.html")
	if err != nil {
		return err
	}
	return b.writer.WriteFile(filepath.Join(dstDomain, "index.html"), page)
}

// collectIndexEntries re-scans the source tree for (href, title) pairs,
// excluding reserved "__" files, sorted ascending by href.
func collectIndexEntries(srcDomain string) ([]IndexEntry, error) {
	files, err := collectMarkdown(srcDomain)
	if err != nil {
		return nil, err
	}
	var entries []IndexEntry
	for _, path := range files {
		if strings.HasPrefix(filepath.Base(path), reservedPrefix) {
			continue
		}
		rel, err := filepath.Rel(srcDomain, path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, IndexEntry{
			Href:  filepath.ToSlash(strings.TrimSuffix(rel, markdownExt) + htmlExt),
			Title: pageTitle(path),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Href < entries[j].Href })
	return entries, nil
}
