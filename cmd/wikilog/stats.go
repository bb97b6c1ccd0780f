package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/wikilog/internal/domain/ports"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-kind counts of stored log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withStore(ctx, func(store ports.LogStore) error {
				counts, err := store.CountByType(ctx)
				if err != nil {
					return err
				}

				if len(counts) == 0 {
					fmt.Println("Store is empty.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "KIND\tCOUNT")
				for _, c := range counts {
					fmt.Fprintf(w, "%s\t%d\n", c.Kind, c.Count)
				}
				return w.Flush()
			})
		},
	}
}
