package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/domain/ports"
)

func newFetchCmd() *cobra.Command {
	var (
		kind  string
		limit int
		file  string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch log entries and persist them to the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, file, func(d *Deps) error {
				return withStore(ctx, func(store ports.LogStore) error {
					result, err := d.LogsHandler.HandleFetch(ctx, store, entities.Kind(kind), limit)
					if err != nil {
						return err
					}

					fmt.Printf("Stored %d entries (batch %s).\n", len(result.Entries), result.BatchID)
					for _, f := range result.Failures {
						fmt.Fprintf(os.Stderr, "skipped record %d (logid %d): %v\n", f.Index, f.LogID, f.Err)
					}
					return nil
				})
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Entry kind to fetch; empty for all")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of entries")
	cmd.Flags().StringVar(&file, "file", "", "Read records from a JSON dump instead of the API")

	return cmd
}
