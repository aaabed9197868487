package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/glabrego/gameshelf/internal/app"
	"github.com/glabrego/gameshelf/internal/browse"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived catalog snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if !cfg.ArchiveEnabled() {
				return fmt.Errorf("%w: set --db, db_path or GAMESHELF_DB_PATH", app.ErrNoArchive)
			}

			svc, closeSvc, err := openService(cmd.Context(), cfg, newStderrLogger())
			if err != nil {
				return err
			}
			defer closeSvc()

			snapshots, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFETCHED\tUPDATED\tGAMES\tSOURCE")
			for _, snap := range snapshots {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
					snap.ID,
					snap.FetchedAt.Local().Format(time.DateTime),
					browse.UpdatedLabel(snap.UpdatedUTC),
					snap.GameCount,
					snap.Source,
				)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", app.DefaultHistoryLimit, "Maximum number of snapshots to show")

	return cmd
}
