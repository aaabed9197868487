package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GAMESHELF_CATALOG_URL",
		"GAMESHELF_DB_PATH",
		"GAMESHELF_LOG_PATH",
		"GAMESHELF_TIMEOUT",
		"GAMESHELF_GCS_CREDENTIALS",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogURL != defaultCatalogURL {
		t.Fatalf("unexpected catalog URL: %s", cfg.CatalogURL)
	}
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("unexpected timeout: %s", cfg.Timeout)
	}
	if cfg.ArchiveEnabled() {
		t.Fatalf("expected archive disabled by default, db=%q", cfg.DBPath)
	}
	if !strings.HasSuffix(cfg.LogPath, filepath.Join("gameshelf", "gameshelf.log")) {
		t.Fatalf("unexpected log path: %s", cfg.LogPath)
	}
}

func TestLoad_ReadsTOMLFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
catalog_url = "https://example.com/games.json"
db_path = "` + filepath.ToSlash(filepath.Join(dir, "snapshots.db")) + `"
timeout = "3s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogURL != "https://example.com/games.json" {
		t.Fatalf("unexpected catalog URL: %s", cfg.CatalogURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.Timeout)
	}
	if !cfg.ArchiveEnabled() || filepath.Base(cfg.DBPath) != "snapshots.db" {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`catalog_url = "from-file.json"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GAMESHELF_CATALOG_URL", "gs://bucket/games.json")
	t.Setenv("GAMESHELF_TIMEOUT", "250ms")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.CatalogURL != "gs://bucket/games.json" {
		t.Fatalf("expected env override, got %s", cfg.CatalogURL)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Fatalf("unexpected timeout: %s", cfg.Timeout)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("catalog_url = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_InvalidTimeoutEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GAMESHELF_TIMEOUT", "soon")

	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{CatalogURL: "games.json", LogPath: "/tmp/gameshelf.log", Timeout: time.Second}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := map[string]Config{
		"empty catalog":     {LogPath: "/tmp/x.log", Timeout: time.Second},
		"zero timeout":      {CatalogURL: "games.json", LogPath: "/tmp/x.log"},
		"negative timeout":  {CatalogURL: "games.json", LogPath: "/tmp/x.log", Timeout: -time.Second},
		"missing log path":  {CatalogURL: "games.json", Timeout: time.Second},
		"whitespace source": {CatalogURL: "   ", LogPath: "/tmp/x.log", Timeout: time.Second},
	}
	for name, cfg := range cases {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestExpandPath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/games.db")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "games.db") {
		t.Fatalf("unexpected expanded path: %s", got)
	}
}
