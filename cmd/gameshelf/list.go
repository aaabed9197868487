package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glabrego/gameshelf/internal/browse"
	"github.com/glabrego/gameshelf/internal/card"
	"github.com/glabrego/gameshelf/internal/page"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the games that match the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filters.validate(); err != nil {
				return err
			}
			ctrl, doc, err := loadController(cmd.Context(), root)
			if err != nil {
				return err
			}
			filters.apply(ctrl)
			return writeList(cmd.OutOrStdout(), doc.Cards())
		},
	}
	filters.register(cmd)

	return cmd
}

func newTagsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print the catalog's tag vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, _, err := loadController(cmd.Context(), root)
			if err != nil {
				return err
			}
			for _, tag := range ctrl.Tags() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

// loadController fetches the catalog into a controller backed by an
// in-memory document.
func loadController(ctx context.Context, root *rootOptions) (*browse.Controller, *page.Document, error) {
	cfg, err := root.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := newStderrLogger()

	svc, closeSvc, err := openService(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	defer closeSvc()

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	doc := page.NewDocument("")
	ctrl := browse.New(doc, logger.With(slog.String("source", svc.Source())))
	if err := ctrl.Start(loadCtx, svc); err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return ctrl, doc, nil
}

func writeList(w io.Writer, views []card.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range views {
		link := v.PlayURL
		if v.ComingSoon {
			link = card.ComingSoonCTA
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Name, strings.Join(v.Pills(), " • "), link)
	}
	fmt.Fprintf(tw, "\n%s\n", browse.CountLabel(len(views)))
	return tw.Flush()
}
