package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glabrego/gameshelf/internal/app"
	"github.com/glabrego/gameshelf/internal/browse"
	"github.com/glabrego/gameshelf/internal/catalog"
	"github.com/glabrego/gameshelf/internal/config"
	"github.com/glabrego/gameshelf/internal/filter"
	"github.com/glabrego/gameshelf/internal/storage"
	"github.com/glabrego/gameshelf/internal/tui"
)

// errLoadFailed is returned after the browser showed the failure text, so the
// process exits non-zero without printing the cause twice.
var errLoadFailed = errors.New("could not load catalog")

type rootOptions struct {
	configPath string
	catalogURL string
	dbPath     string
	title      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gameshelf",
		Short: "Browse a catalog of games in the terminal",
		Long: `gameshelf fetches a games.json catalog over HTTP(S), from Google Cloud Storage
or from a local file, and shows it as a filterable, searchable card grid.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.toml (default ~/.config/gameshelf/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.catalogURL, "catalog", "", "Catalog location: http(s)://, gs://bucket/object, file:// or a path")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite snapshot archive path (overrides config)")
	rootCmd.Flags().StringVar(&opts.title, "title", "Games", "Heading shown above the grid")

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newTagsCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))

	return rootCmd
}

// loadConfig resolves the config file and environment, then applies flags.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	if v := strings.TrimSpace(o.catalogURL); v != "" {
		cfg.CatalogURL = v
	}
	if v := strings.TrimSpace(o.dbPath); v != "" {
		expanded, err := config.ExpandPath(v)
		if err != nil {
			return config.Config{}, fmt.Errorf("config error: %w", err)
		}
		cfg.DBPath = expanded
	}
	return cfg, nil
}

// openService builds the catalog loader and, when configured, the snapshot
// archive. The returned close func is always safe to call.
func openService(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app.Service, func(), error) {
	source, err := catalog.NewSource(cfg.CatalogURL, catalog.SourceOptions{
		Timeout:            cfg.Timeout,
		GCSCredentialsFile: cfg.GCSCredentials,
	})
	if err != nil {
		return nil, func() {}, err
	}
	loader := catalog.NewLoader(source)

	if !cfg.ArchiveEnabled() {
		return app.NewService(loader, nil, logger), func() {}, nil
	}

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		return nil, func() {}, fmt.Errorf("storage init error: %w", err)
	}
	if err := repo.Init(ctx); err != nil {
		_ = repo.Close()
		return nil, func() {}, fmt.Errorf("storage schema error: %w", err)
	}
	return app.NewService(loader, repo, logger), func() { _ = repo.Close() }, nil
}

func newStderrLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// openLogFile keeps slog output away from the alternate screen.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func runBrowse(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	logFile, err := openLogFile(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, logging disabled\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	svc, closeSvc, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSvc()

	logger.Info("starting browser", "source", svc.Source())
	model := tui.NewModel(svc, tui.Options{
		Title:       opts.title,
		LoadTimeout: cfg.Timeout,
		Logger:      logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Phase() == browse.LoadFailed {
		return fmt.Errorf("%w from %s (see %s)", errLoadFailed, svc.Source(), cfg.LogPath)
	}
	return nil
}

// filterFlags are shared by render and list.
type filterFlags struct {
	category string
	tag      string
	query    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", filter.CategoryAll, "Category segment: "+strings.Join(filter.Categories, ", "))
	cmd.Flags().StringVar(&f.tag, "tag", "", "Only show games carrying this tag")
	cmd.Flags().StringVar(&f.query, "query", "", "Search text matched against name, description and tags")
}

func (f *filterFlags) validate() error {
	category := strings.TrimSpace(f.category)
	if category == "" {
		return nil
	}
	if !slices.Contains(filter.Categories, category) {
		return fmt.Errorf("unknown category %q: must be one of %s", category, strings.Join(filter.Categories, ", "))
	}
	return nil
}

// apply drives the controller the way the browser's controls would.
func (f *filterFlags) apply(ctrl *browse.Controller) {
	if category := strings.TrimSpace(f.category); category != "" && category != filter.CategoryAll {
		ctrl.SelectCategory(category)
	}
	if tag := strings.TrimSpace(f.tag); tag != "" {
		ctrl.ToggleTag(tag)
	}
	if f.query != "" {
		ctrl.SetQuery(f.query)
	}
}
