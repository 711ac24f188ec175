package config

import (
	"fmt"
	"os"
)

const sampleConfig = `# sitebuilder configuration
site_title = "Site"
base_url = "https://example.com"
css_href = "/style.css"
date_format = "2006-01-02"
src_root = "/var/www/src"
dst_root = "/var/www/htdocs"
`

// Init writes an example configuration file. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
