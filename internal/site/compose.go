package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
)

const pageTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="canonical" href="{{.Canonical}}">
<link rel="stylesheet" href="{{.CSSHref}}">
</head>
<body>
<header>
  <h1><a href="{{.BaseURL}}">{{.SiteTitle}}</a></h1>
</header>
<main>
{{.Content}}
</main>
<footer>
  <p>Built {{.Built}} UTC</p>
</footer>
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateText))

// pageData is what the page template is executed with. Content is
// already-rendered HTML and is inserted without further escaping.
type pageData struct {
	Title     string
	Canonical string
	CSSHref   string
	BaseURL   string
	SiteTitle string
	Content   template.HTML
	Built     string
}

// Composer wraps rendered body HTML and page metadata into full HTML
// documents using the fixed site template.
type Composer struct {
	cfg config.Config
	now func() time.Time
}

// NewComposer returns a Composer for the given configuration.
func NewComposer(cfg config.Config) *Composer {
	return &Composer{cfg: cfg, now: time.Now}
}

// Compose produces a complete HTML document. The canonical URL is the
// configured base URL joined with the page's site-relative path.
func (c *Composer) Compose(title, bodyHTML, canonicalPath string) (string, error) {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	data := pageData{
		Title:     title,
		Canonical: base + "/" + strings.TrimLeft(canonicalPath, "/"),
		CSSHref:   c.cfg.CSSHref,
		BaseURL:   base,
		SiteTitle: c.cfg.SiteTitle,
		Content:   template.HTML(bodyHTML),
		Built:     c.now().UTC().Format("2006-01-02 15:04:05"),
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("compose page: %w", err)
	}
	return buf.String(), nil
}
