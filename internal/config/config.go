// Package config resolves the effective site configuration for one domain.
// Precedence, lowest to highest: built-in defaults, the global TOML config
// file, the domain's __settings__.toml, CLI flag overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	// GlobalConfigName is the config file searched for in the working directory.
	GlobalConfigName = "sitebuilder.toml"
	// EtcConfigPath is the system-wide fallback config location.
	EtcConfigPath = "/etc/sitebuilder.toml"
	// SettingsFileName is the per-domain settings file at the domain source root.
	SettingsFileName = "__settings__.toml"
)

// ErrSrcRootNotSet and ErrDstRootNotSet report required roots that were not
// resolvable from flags or any config file.
var (
	ErrSrcRootNotSet = errors.New("src_root not set via flag or config")
	ErrDstRootNotSet = errors.New("dst_root not set via flag or config")
)

// Config is the resolved configuration. It is treated as immutable once
// Resolve returns it.
type Config struct {
	SiteTitle  string `toml:"site_title"`
	BaseURL    string `toml:"base_url"`
	CSSHref    string `toml:"css_href"`
	DateFormat string `toml:"date_format"`
	SrcRoot    string `toml:"src_root"`
	DstRoot    string `toml:"dst_root"`
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		SiteTitle:  "Site",
		BaseURL:    "/",
		CSSHref:    "/style.css",
		DateFormat: "2006-01-02",
	}
}

// Overrides carries CLI-provided values. Empty fields leave the merged
// value untouched.
type Overrides struct {
	SiteTitle  string
	BaseURL    string
	CSSHref    string
	DateFormat string
	SrcRoot    string
	DstRoot    string
}

func (o Overrides) apply(c *Config) {
	if o.SiteTitle != "" {
		c.SiteTitle = o.SiteTitle
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.CSSHref != "" {
		c.CSSHref = o.CSSHref
	}
	if o.DateFormat != "" {
		c.DateFormat = o.DateFormat
	}
	if o.SrcRoot != "" {
		c.SrcRoot = o.SrcRoot
	}
	if o.DstRoot != "" {
		c.DstRoot = o.DstRoot
	}
}

// fileConfig mirrors Config with pointer fields so a merge only touches
// keys actually present in the file.
type fileConfig struct {
	SiteTitle  *string `toml:"site_title"`
	BaseURL    *string `toml:"base_url"`
	CSSHref    *string `toml:"css_href"`
	DateFormat *string `toml:"date_format"`
	SrcRoot    *string `toml:"src_root"`
	DstRoot    *string `toml:"dst_root"`
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal([]byte(os.ExpandEnv(string(data))), &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.SiteTitle != nil {
		c.SiteTitle = *fc.SiteTitle
	}
	if fc.BaseURL != nil {
		c.BaseURL = *fc.BaseURL
	}
	if fc.CSSHref != nil {
		c.CSSHref = *fc.CSSHref
	}
	if fc.DateFormat != nil {
		c.DateFormat = *fc.DateFormat
	}
	if fc.SrcRoot != nil {
		c.SrcRoot = *fc.SrcRoot
	}
	if fc.DstRoot != nil {
		c.DstRoot = *fc.DstRoot
	}
	return nil
}

// findGlobalConfig returns the global config path to use, or "" when none
// exists. An explicitly requested path wins over the search order.
func findGlobalConfig(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(GlobalConfigName); err == nil {
		return GlobalConfigName
	}
	if _, err := os.Stat(EtcConfigPath); err == nil {
		return EtcConfigPath
	}
	return ""
}

// Resolve builds the effective configuration for one domain. The domain's
// __settings__.toml is looked up under the source root once that root is
// known; CLI overrides keep the highest precedence either way. An empty
// domain skips the per-domain settings lookup.
func Resolve(explicitPath, domain string, ov Overrides) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := findGlobalConfig(explicitPath); path != "" {
		slog.Debug("loading global config", "path", path)
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	} else {
		slog.Debug("no global config file found, using defaults")
	}
	ov.apply(&cfg)

	if domain != "" && cfg.SrcRoot != "" {
		settings := filepath.Join(cfg.SrcRoot, domain, SettingsFileName)
		if _, err := os.Stat(settings); err == nil {
			slog.Info("applying domain settings", "path", settings)
			if err := cfg.mergeFile(settings); err != nil {
				return cfg, err
			}
			ov.apply(&cfg)
		}
	}
	return cfg, nil
}
