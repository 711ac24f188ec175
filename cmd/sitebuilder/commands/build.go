package commands

import (
	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	DomainFlags
	CleanFirst bool `name:"clean-first" help:"Remove generated .html under the domain before building"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Resolve(root.Config, b.Domain, b.overrides())
	if err != nil {
		return err
	}
	if cfg.SrcRoot == "" {
		return config.ErrSrcRootNotSet
	}
	if cfg.DstRoot == "" {
		return config.ErrDstRootNotSet
	}
	return site.NewBuilder(cfg, b.DryRun).Build(b.Domain, b.CleanFirst)
}
