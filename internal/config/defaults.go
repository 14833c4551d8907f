package config

import "time"

// Default values for settings that the command line does not cover.
const (
	DefaultBackend      = "auto"
	DefaultAppName      = "notifier"
	DefaultUrgency      = "normal"
	DefaultClickTimeout = 500 * time.Millisecond
	DefaultImageTimeout = 10 * time.Second
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"backend":         DefaultBackend,
		"app_name":        DefaultAppName,
		"urgency":         DefaultUrgency,
		"click_timeout":   DefaultClickTimeout,
		"image_timeout":   DefaultImageTimeout,
		"image_cache_dir": "",
		"debug":           false,
	}
}
