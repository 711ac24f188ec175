package commands

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

func TestCLI_ParsesBuildFlags(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{
		"build",
		"--domain", "notes.example.com",
		"--src-root", "/var/www/src",
		"--dst-root", "/var/www/htdocs",
		"--site-title", "Notes",
		"--clean-first",
		"--dry-run",
	})
	require.NoError(t, err)
	require.Equal(t, "build", ctx.Command())
	require.Equal(t, "notes.example.com", cli.Build.Domain)
	require.True(t, cli.Build.CleanFirst)
	require.True(t, cli.Build.DryRun)

	ov := cli.Build.overrides()
	require.Equal(t, "/var/www/src", ov.SrcRoot)
	require.Equal(t, "/var/www/htdocs", ov.DstRoot)
	require.Equal(t, "Notes", ov.SiteTitle)
}

func TestCLI_DomainIsRequired(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"})
	require.NoError(t, err)

	_, err = parser.Parse([]string{"clean"})
	require.Error(t, err)
}
