package config

import (
	"os"
	"path/filepath"
)

// candidateNames are tried in order inside the config directory.
var candidateNames = []string{"config.yml", "config.yaml", "config.json"}

// ResolvePath returns the config file to load, or "" when there is none.
// NOTIFIER_CONFIG wins; otherwise the first existing file under
// $XDG_CONFIG_HOME/notifier (or ~/.config/notifier) is used.
func ResolvePath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expandHomePath(p)
	}

	dir := Dir()
	if dir == "" {
		return ""
	}
	for _, name := range candidateNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Dir returns the notifier config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notifier")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "notifier")
}

// DefaultImageCacheDir is where downloaded image attachments are kept when
// image_cache_dir is not set.
func DefaultImageCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "notifier", "images")
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "notifier-images")
	}
	return filepath.Join(dir, "notifier", "images")
}
