// Package site drives the build pipeline for one domain: it discovers
// Markdown sources, renders and composes each page, writes the mirrored
// output tree, and generates the aggregated index. Processing is strictly
// sequential per file; index ordering comes from an explicit sort, not from
// filesystem enumeration order.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/markdown"
)

const (
	markdownExt    = ".md"
	htmlExt        = ".html"
	reservedPrefix = "__"
	indexFileName  = "__index__.md"
)

// ErrDomainSourceMissing reports a build request for a domain whose source
// subtree does not exist.
var ErrDomainSourceMissing = errors.New("domain source path does not exist")

// Builder converts one domain's Markdown tree into HTML pages.
type Builder struct {
	cfg      config.Config
	composer *Composer
	writer   Writer
}

// NewBuilder returns a Builder for the given configuration.
func NewBuilder(cfg config.Config, dryRun bool) *Builder {
	return &Builder{
		cfg:      cfg,
		composer: NewComposer(cfg),
		writer:   Writer{DryRun: dryRun},
	}
}

// Build renders every Markdown file under the domain's source root into the
// destination root, preserving relative structure, then writes the
// aggregated index page. With cleanFirst set, previously generated HTML
// under the destination is removed before the build.
func (b *Builder) Build(domain string, cleanFirst bool) error {
	srcDomain := filepath.Join(b.cfg.SrcRoot, domain)
	dstDomain := filepath.Join(b.cfg.DstRoot, domain)

	if _, err := os.Stat(srcDomain); err != nil {
		return fmt.Errorf("%w: %s", ErrDomainSourceMissing, srcDomain)
	}

	slog.Info("starting build",
		"domain", domain,
		"build_id", shortBuildID(),
		"src", srcDomain,
		"dst", dstDomain,
		"dry_run", b.writer.DryRun)

	if cleanFirst {
		if err := Clean(dstDomain, b.writer); err != nil {
			return err
		}
	}

	files, err := collectMarkdown(srcDomain)
	if err != nil {
		return err
	}
	slog.Info("found markdown files", "count", len(files))

	for _, path := range files {
		if err := b.convertFile(path, srcDomain, dstDomain); err != nil {
			return err
		}
	}

	if err := b.buildIndex(srcDomain, dstDomain); err != nil {
		return err
	}

	slog.Info("build complete", "domain", domain)
	return nil
}

// convertFile renders one Markdown source into a composed page at the
// mirrored destination path. Reserved "__" files are skipped.
func (b *Builder) convertFile(path, srcDomain, dstDomain string) error {
	if strings.HasPrefix(filepath.Base(path), reservedPrefix) {
		return nil
	}
	rel, err := filepath.Rel(srcDomain, path)
	if err != nil {
		return fmt.Errorf("relative path for %s: %w", path, err)
	}
	relHTML := strings.TrimSuffix(rel, markdownExt) + htmlExt
	dst := filepath.Join(dstDomain, relHTML)
	slog.Debug("convert", "src", path, "dst", dst)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	body := markdown.Render(string(raw))
	page, err := b.composer.Compose(pageTitle(path), body, filepath.ToSlash(relHTML))
	if err != nil {
		return err
	}
	return b.writer.WriteFile(dst, page)
}

// pageTitle is the first ATX heading in the file, or the file name with
// hyphens replaced by spaces. The file is read again here, independently of
// the render pass; sources are small.
func pageTitle(path string) string {
	if raw, err := os.ReadFile(path); err == nil {
		if t := markdown.Title(string(raw)); t != "" {
			return t
		}
	}
	stem := strings.TrimSuffix(filepath.Base(path), markdownExt)
	return strings.ReplaceAll(stem, "-", " ")
}

// collectMarkdown lists every Markdown file under root, recursively.
func collectMarkdown(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == markdownExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

func shortBuildID() string {
	return uuid.NewString()[:8]
}
