package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultConfigPath = "~/.config/gameshelf/config.toml"
	defaultCatalogURL = "games.json"
	defaultLogPath    = "~/.local/share/gameshelf/gameshelf.log"
	defaultTimeout    = 10 * time.Second
)

// Config holds runtime settings for the CLI app.
type Config struct {
	CatalogURL     string
	DBPath         string
	LogPath        string
	Timeout        time.Duration
	GCSCredentials string
}

// Default returns the settings used when neither a config file nor the
// environment provides a value. DBPath is empty: snapshots are opt-in.
func Default() Config {
	return Config{
		CatalogURL: defaultCatalogURL,
		LogPath:    mustExpand(defaultLogPath),
		Timeout:    defaultTimeout,
	}
}

// Load applies defaults, the TOML file at path (or the default location),
// then GAMESHELF_* environment overrides, and validates the result.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyFile(resolved); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		CatalogURL     string `toml:"catalog_url"`
		DBPath         string `toml:"db_path"`
		LogPath        string `toml:"log_path"`
		Timeout        string `toml:"timeout"`
		GCSCredentials string `toml:"gcs_credentials"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.CatalogURL); v != "" {
		c.CatalogURL = v
	}
	if v := strings.TrimSpace(raw.DBPath); v != "" {
		c.DBPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		c.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.GCSCredentials); v != "" {
		c.GCSCredentials = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config timeout %q: %w", v, err)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("GAMESHELF_CATALOG_URL")); v != "" {
		c.CatalogURL = v
	}
	if v := strings.TrimSpace(os.Getenv("GAMESHELF_DB_PATH")); v != "" {
		c.DBPath = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv("GAMESHELF_LOG_PATH")); v != "" {
		c.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv("GAMESHELF_GCS_CREDENTIALS")); v != "" {
		c.GCSCredentials = mustExpand(v)
	}
	if v := strings.TrimSpace(os.Getenv("GAMESHELF_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GAMESHELF_TIMEOUT must be a duration: %w", err)
		}
		c.Timeout = d
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.CatalogURL) == "" {
		return errors.New("CatalogURL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be positive: %s", c.Timeout)
	}
	if strings.TrimSpace(c.LogPath) == "" {
		return errors.New("LogPath is required")
	}
	return nil
}

// ArchiveEnabled reports whether fetched catalogs should be snapshotted.
func (c Config) ArchiveEnabled() bool {
	return strings.TrimSpace(c.DBPath) != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes the path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
