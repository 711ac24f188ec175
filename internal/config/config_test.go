package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "Site", cfg.SiteTitle)
	require.Equal(t, "/", cfg.BaseURL)
	require.Equal(t, "/style.css", cfg.CSSHref)
	require.Equal(t, "2006-01-02", cfg.DateFormat)
	require.Empty(t, cfg.SrcRoot)
	require.Empty(t, cfg.DstRoot)
}

func TestResolve_GlobalFileMergesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitebuilder.toml")
	require.NoError(t, os.WriteFile(path, []byte("site_title = \"Notes\"\n"), 0o644))

	cfg, err := Resolve(path, "", Overrides{})
	require.NoError(t, err)
	require.Equal(t, "Notes", cfg.SiteTitle)
	// Keys absent from the file keep their defaults.
	require.Equal(t, "/", cfg.BaseURL)
	require.Equal(t, "/style.css", cfg.CSSHref)
}

func TestResolve_MissingExplicitFileFails(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "none.toml"), "", Overrides{})
	require.Error(t, err)
}

func TestResolve_DomainSettingsOverrideGlobal(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	domainDir := filepath.Join(src, "notes.example.com")
	require.NoError(t, os.MkdirAll(domainDir, 0o755))

	global := filepath.Join(dir, "global.toml")
	require.NoError(t, os.WriteFile(global,
		[]byte(fmt.Sprintf("site_title = %q\nsrc_root = %q\n", "Global", src)), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(domainDir, SettingsFileName),
		[]byte("site_title = \"Domain\"\n"), 0o644))

	cfg, err := Resolve(global, "notes.example.com", Overrides{})
	require.NoError(t, err)
	require.Equal(t, "Domain", cfg.SiteTitle)
	require.Equal(t, src, cfg.SrcRoot)
}

func TestResolve_OverridesBeatDomainSettings(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	domainDir := filepath.Join(src, "notes.example.com")
	require.NoError(t, os.MkdirAll(domainDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(domainDir, SettingsFileName),
		[]byte("site_title = \"Domain\"\n"), 0o644))

	cfg, err := Resolve("", "notes.example.com", Overrides{SiteTitle: "CLI", SrcRoot: src})
	require.NoError(t, err)
	require.Equal(t, "CLI", cfg.SiteTitle)
}

func TestResolve_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("SB_TEST_TITLE", "FromEnv")
	dir := t.TempDir()
	path := filepath.Join(dir, "sitebuilder.toml")
	require.NoError(t, os.WriteFile(path, []byte("site_title = \"${SB_TEST_TITLE}\"\n"), 0o644))

	cfg, err := Resolve(path, "", Overrides{})
	require.NoError(t, err)
	require.Equal(t, "FromEnv", cfg.SiteTitle)
}

func TestResolve_InvalidTOMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("site_title = \n"), 0o644))

	_, err := Resolve(path, "", Overrides{})
	require.Error(t, err)
}

func TestInit_WritesSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitebuilder.toml")
	require.NoError(t, Init(path, false))

	cfg := Default()
	require.NoError(t, cfg.mergeFile(path))
	require.Equal(t, "https://example.com", cfg.BaseURL)
	require.Equal(t, "/var/www/src", cfg.SrcRoot)
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitebuilder.toml")
	require.NoError(t, Init(path, false))
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
