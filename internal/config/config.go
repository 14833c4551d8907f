// Package config loads notifier settings from defaults, an optional config
// file, and NOTIFIER_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides (NOTIFIER_CLICK_TIMEOUT=2s).
const EnvPrefix = "NOTIFIER_"

// EnvConfigPath names an explicit config file, bypassing the search path.
const EnvConfigPath = EnvPrefix + "CONFIG"

// Configuration represents the notifier settings that are not part of the
// command line.
type Configuration struct {
	Backend       string        `koanf:"backend" validate:"oneof=auto dbus notify-send gosx osascript beeep"`
	AppName       string        `koanf:"app_name" validate:"required"`
	Urgency       string        `koanf:"urgency" validate:"oneof=low normal critical"`
	ClickTimeout  time.Duration `koanf:"click_timeout" validate:"min=10ms,max=1m"`
	ImageTimeout  time.Duration `koanf:"image_timeout" validate:"min=100ms,max=2m"`
	ImageCacheDir string        `koanf:"image_cache_dir"`
	Debug         bool          `koanf:"debug"`
}

// Load builds a Configuration.
// Priority: Environment variables > config file > defaults.
// An empty or missing path means no config file.
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateStruct(&cfg, path); err != nil {
		return nil, err
	}

	cfg.ImageCacheDir = expandHomePath(cfg.ImageCacheDir)

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return k.Load(file.Provider(path), json.Parser())
	}

	// Surface yaml syntax errors with a line number before koanf flattens them.
	if err := ValidateYAMLSyntax(path); err != nil {
		return err
	}
	return k.Load(file.Provider(path), YAMLParser())
}

// envTransform converts environment variable names to config keys.
// Example: NOTIFIER_CLICK_TIMEOUT -> click_timeout
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func validateStruct(cfg *Configuration, path string) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return name
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			FilePath: path,
			Field:    fe.Field(),
			Message:  describeFieldError(fe),
		}
	}
	return fmt.Errorf("config validation failed: %w", err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
