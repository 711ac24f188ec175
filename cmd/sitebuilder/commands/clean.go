package commands

import (
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// CleanCmd implements the 'clean' command.
type CleanCmd struct {
	DomainFlags
}

func (c *CleanCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Resolve(root.Config, "", c.overrides())
	if err != nil {
		return err
	}
	if cfg.DstRoot == "" {
		return config.ErrDstRootNotSet
	}
	dstDomain := filepath.Join(cfg.DstRoot, c.Domain)
	if err := site.Clean(dstDomain, site.Writer{DryRun: c.DryRun}); err != nil {
		return err
	}
	slog.Info("clean complete", "domain", c.Domain)
	return nil
}
