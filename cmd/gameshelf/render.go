package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/glabrego/gameshelf/internal/browse"
	"github.com/glabrego/gameshelf/internal/page"
)

type renderOptions struct {
	filters filterFlags
	out     string
	title   string
	shell   string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the catalog as a static HTML page",
		Long: `Render fetches the catalog once, applies the given filters and writes the
resulting page, including the card grid, to --out or stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.filters.validate(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if opts.out != "" && opts.out != "-" {
				file, err := os.Create(opts.out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer file.Close()
				w = file
			}
			return runRender(cmd.Context(), root, opts, w)
		},
	}

	opts.filters.register(cmd)
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the page to this file instead of stdout")
	cmd.Flags().StringVar(&opts.title, "title", page.DefaultTitle, "Page title and heading")
	cmd.Flags().StringVar(&opts.shell, "shell", "", "Custom pug page shell (default built-in)")

	return cmd
}

func runRender(ctx context.Context, root *rootOptions, opts *renderOptions, w io.Writer) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	logger := newStderrLogger()

	renderer, err := page.NewRenderer(opts.shell)
	if err != nil {
		return err
	}

	svc, closeSvc, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSvc()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	doc := page.NewDocument(opts.title)
	ctrl := browse.New(doc, logger.With("source", svc.Source()))
	if err := ctrl.Start(loadCtx, svc); err != nil {
		// The page still carries the failure text; write it before exiting.
		if renderErr := renderer.Render(w, doc); renderErr != nil {
			logger.Error("render failure page", "err", renderErr)
		}
		return fmt.Errorf("load catalog: %w", err)
	}

	opts.filters.apply(ctrl)
	if opts.filters.query != "" {
		doc.SetText(browse.SlotQuery, opts.filters.query)
	}

	return renderer.Render(w, doc)
}
