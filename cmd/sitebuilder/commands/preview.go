package commands

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"

	"git.home.luguber.info/inful/sitebuilder/internal/config"
	"git.home.luguber.info/inful/sitebuilder/internal/preview"
	"git.home.luguber.info/inful/sitebuilder/internal/site"
)

// PreviewCmd serves a built domain locally, watching the source tree and
// rebuilding on changes.
type PreviewCmd struct {
	Domain  string `required:"" help:"Domain subtree to preview, e.g. notes.example.com"`
	SrcRoot string `name:"src-root" help:"Root of source trees"`
	DstRoot string `name:"dst-root" help:"Root of destination trees"`
	Port    int    `default:"8080" help:"Preview server port"`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Resolve(root.Config, p.Domain, config.Overrides{SrcRoot: p.SrcRoot, DstRoot: p.DstRoot})
	if err != nil {
		return err
	}
	if cfg.SrcRoot == "" {
		return config.ErrSrcRootNotSet
	}
	if cfg.DstRoot == "" {
		return config.ErrDstRootNotSet
	}

	builder := site.NewBuilder(cfg, false)
	rebuild := func() error { return builder.Build(p.Domain, false) }

	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srcDomain := filepath.Join(cfg.SrcRoot, p.Domain)
	dstDomain := filepath.Join(cfg.DstRoot, p.Domain)
	return preview.Run(sigctx, srcDomain, dstDomain, p.Port, rebuild)
}
