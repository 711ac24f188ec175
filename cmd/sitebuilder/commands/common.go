package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition with global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: sitebuilder.toml, then /etc/sitebuilder.toml)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" help:"Build the static site for a domain"`
	Clean   CleanCmd   `cmd:"" help:"Remove generated HTML for a domain"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	Preview PreviewCmd `cmd:"" help:"Serve a built domain locally and rebuild on source changes"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// DomainFlags are shared by commands that operate on a single domain.
type DomainFlags struct {
	Domain     string `required:"" help:"Domain subtree to operate on, e.g. notes.example.com"`
	SrcRoot    string `name:"src-root" help:"Root of source trees (e.g. /var/www/src)"`
	DstRoot    string `name:"dst-root" help:"Root of destination trees (e.g. /var/www/htdocs)"`
	SiteTitle  string `name:"site-title" help:"Override site title"`
	BaseURL    string `name:"base-url" help:"Base URL for canonical links"`
	CSSHref    string `name:"css-href" help:"Href to a CSS file for all pages"`
	DateFormat string `name:"date-format" help:"Go time layout for dates"`
	DryRun     bool   `name:"dry-run" help:"Log actions without writing files"`
}

func (f DomainFlags) overrides() config.Overrides {
	return config.Overrides{
		SiteTitle:  f.SiteTitle,
		BaseURL:    f.BaseURL,
		CSSHref:    f.CSSHref,
		DateFormat: f.DateFormat,
		SrcRoot:    f.SrcRoot,
		DstRoot:    f.DstRoot,
	}
}
