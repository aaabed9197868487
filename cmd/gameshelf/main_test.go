package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glabrego/gameshelf/internal/app"
	"github.com/glabrego/gameshelf/internal/browse"
)

const testCatalog = `{
  "updated_utc": "2026-02-01T10:00:00Z",
  "tags": ["logic", "numbers"],
  "games": [
    {"name": "OpGlyph", "slug": "opglyph", "category": "quick", "tags": ["logic"], "url_play": "https://opglyph.com", "time_to_play_sec": 45},
    {"name": "NumberGlyph", "slug": "numberglyph", "category": "daily", "tags": ["numbers"], "url_play": "https://numberglyph.com"},
    {"name": "MultiGlyph", "slug": "multiglyph", "category": "soon", "tags": ["logic"]}
  ]
}`

// isolate points config, logs and home at a temp dir so the developer's own
// settings never leak into a test run.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, name := range []string{
		"GAMESHELF_CATALOG_URL",
		"GAMESHELF_DB_PATH",
		"GAMESHELF_LOG_PATH",
		"GAMESHELF_TIMEOUT",
		"GAMESHELF_GCS_CREDENTIALS",
	} {
		t.Setenv(name, "")
	}
	return dir
}

func writeCatalog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "games.json")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand_AppliesFilters(t *testing.T) {
	dir := isolate(t)
	catalogPath := writeCatalog(t, dir)

	out, err := execute(t, "render",
		"--config", filepath.Join(dir, "absent.toml"),
		"--catalog", catalogPath,
		"--category", "daily",
		"--title", "Glyph Games",
	)
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.Contains(out, "<title>Glyph Games</title>") {
		t.Fatalf("expected page title, got:\n%s", out)
	}
	if !strings.Contains(out, "NumberGlyph") || strings.Contains(out, "OpGlyph") {
		t.Fatalf("expected only the daily card, got:\n%s", out)
	}
	if !strings.Contains(out, "1 game") {
		t.Fatalf("expected count label, got:\n%s", out)
	}
}

func TestRenderCommand_WritesOutFileAndQuery(t *testing.T) {
	dir := isolate(t)
	catalogPath := writeCatalog(t, dir)
	outPath := filepath.Join(dir, "index.html")

	if _, err := execute(t, "render",
		"--config", filepath.Join(dir, "absent.toml"),
		"--catalog", catalogPath,
		"--query", "multi",
		"--out", outPath,
	); err != nil {
		t.Fatalf("render returned error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, `value="multi"`) {
		t.Fatalf("expected search field to carry the query, got:\n%s", page)
	}
	if !strings.Contains(page, "MultiGlyph") || strings.Contains(page, "NumberGlyph") {
		t.Fatalf("expected only MultiGlyph, got:\n%s", page)
	}
}

func TestRenderCommand_FailedLoadExitsWithError(t *testing.T) {
	dir := isolate(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	out, err := execute(t, "render",
		"--config", filepath.Join(dir, "absent.toml"),
		"--catalog", server.URL+"/games.json",
	)
	if err == nil {
		t.Fatal("expected error after failed load")
	}
	if !strings.Contains(out, browse.FailureText) {
		t.Fatalf("expected failure text in page, got:\n%s", out)
	}
}

func TestRenderCommand_UnknownCategory(t *testing.T) {
	dir := isolate(t)
	catalogPath := writeCatalog(t, dir)

	_, err := execute(t, "render",
		"--config", filepath.Join(dir, "absent.toml"),
		"--catalog", catalogPath,
		"--category", "arcade",
	)
	if err == nil || !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestListCommand(t *testing.T) {
	dir := isolate(t)
	catalogPath := writeCatalog(t, dir)

	out, err := execute(t, "list",
		"--config", filepath.Join(dir, "absent.toml"),
		"--catalog", catalogPath,
		"--tag", "logic",
	)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "OpGlyph") || !strings.HasPrefix(lines[1], "MultiGlyph") {
		t.Fatalf("unexpected list order:\n%s", out)
	}
	if !strings.Contains(lines[0], "~1 min") || !strings.Contains(lines[0], "https://opglyph.com") {
		t.Fatalf("unexpected OpGlyph row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Coming soon") {
		t.Fatalf("expected coming soon marker: %q", lines[1])
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "2 games") {
		t.Fatalf("expected count footer, got:\n%s", out)
	}
}

func TestTagsCommand(t *testing.T) {
	dir := isolate(t)
	catalogPath := writeCatalog(t, dir)

	out, err := execute(t, "tags",
		"--config", filepath.Join(dir, "absent.toml"),
		"--catalog", catalogPath,
	)
	if err != nil {
		t.Fatalf("tags returned error: %v", err)
	}
	if out != "logic\nnumbers\n" {
		t.Fatalf("unexpected tags output: %q", out)
	}
}

func TestHistoryCommand_RecordsSnapshots(t *testing.T) {
	dir := isolate(t)
	catalogPath := writeCatalog(t, dir)
	dbPath := filepath.Join(dir, "gameshelf.db")
	configPath := filepath.Join(dir, "absent.toml")

	for i := 0; i < 2; i++ {
		if _, err := execute(t, "tags", "--config", configPath, "--catalog", catalogPath, "--db", dbPath); err != nil {
			t.Fatalf("tags returned error: %v", err)
		}
	}

	out, err := execute(t, "history", "--config", configPath, "--db", dbPath, "--limit", "5")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 snapshots, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "2 ") || !strings.Contains(lines[1], catalogPath) {
		t.Fatalf("expected newest snapshot first: %q", lines[1])
	}
}

func TestHistoryCommand_RequiresArchive(t *testing.T) {
	dir := isolate(t)

	_, err := execute(t, "history", "--config", filepath.Join(dir, "absent.toml"))
	if !errors.Is(err, app.ErrNoArchive) {
		t.Fatalf("expected ErrNoArchive, got %v", err)
	}
}
