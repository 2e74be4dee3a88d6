// Package config loads placehold settings from a YAML file, the environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/xob0t/placehold/pkg/apperr"
	"github.com/xob0t/placehold/pkg/options"
)

// Config holds all configuration for the CLI.
type Config struct {
	// ExportDir receives images when no output directory is given.
	// Empty means <home>/.placehold/exports.
	ExportDir string `yaml:"export_dir" env:"PLACEHOLD_EXPORT_DIR"`
	// FontPath points at a TTF/OTF file. Empty uses the embedded Go font.
	FontPath string   `yaml:"font_path" env:"PLACEHOLD_FONT"`
	LogLevel string   `yaml:"log_level" env:"PLACEHOLD_LOG_LEVEL" env-default:"warn"`
	Defaults Defaults `yaml:"defaults"`
}

// Defaults are applied to options the user leaves unset.
type Defaults struct {
	Background string `yaml:"background" env:"PLACEHOLD_BACKGROUND" env-default:"#CCCCCC"`
	Color      string `yaml:"color" env:"PLACEHOLD_COLOR" env-default:"#666666"`
	Format     string `yaml:"format" env:"PLACEHOLD_FORMAT" env-default:"png"`
	FontSize   string `yaml:"fontsize" env:"PLACEHOLD_FONTSIZE" env-default:"auto"`
}

// Options converts d for options.Options.WithDefaults.
func (d Defaults) Options() options.Defaults {
	return options.Defaults{
		Background: d.Background,
		Color:      d.Color,
		Format:     d.Format,
		FontSize:   d.FontSize,
	}
}

// BaseDir returns <home>/.placehold.
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".placehold"), nil
}

// DefaultPath returns <home>/.placehold/config.yaml.
func DefaultPath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads configuration. A .env file in the working directory is loaded
// first if present. A non-empty path must name an existing YAML file, which is
// read with environment overrides; an empty path reads only the environment.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (optional)
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		if !fileExists(path) {
			return nil, apperr.NewConfigError(fmt.Sprintf("config file %s not found", path), fs.ErrNotExist)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, apperr.NewConfigError(fmt.Sprintf("read %s", path), err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, apperr.NewConfigError("read environment", err)
	}

	if cfg.ExportDir == "" {
		base, err := BaseDir()
		if err != nil {
			return nil, apperr.NewConfigError("resolve export directory", err)
		}
		cfg.ExportDir = filepath.Join(base, "exports")
	}

	return cfg, nil
}

// LoadDefault reads DefaultPath when that file exists and falls back to the
// environment otherwise.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, apperr.NewConfigError("resolve config path", err)
	}
	if !fileExists(path) {
		path = ""
	}
	return Load(path)
}

// Default returns the built-in configuration, as written by WriteDefault.
func Default() *Config {
	d := options.BuiltinDefaults
	return &Config{
		LogLevel: "warn",
		Defaults: Defaults{
			Background: d.Background,
			Color:      d.Color,
			Format:     d.Format,
			FontSize:   d.FontSize,
		},
	}
}

const fileHeader = `# placehold configuration
# Every value can be overridden by the matching PLACEHOLD_* environment variable.
# export_dir defaults to ~/.placehold/exports; font_path defaults to the embedded Go font.
`

// ErrExists is returned by WriteDefault when the file is already present.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the built-in configuration to path as YAML, creating
// parent directories. An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("%s: %w (use --force to overwrite)", path, ErrExists)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperr.NewDirectoryError(filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
