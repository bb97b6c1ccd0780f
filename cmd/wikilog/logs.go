package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/wikilog/internal/domain/entities"
)

func newLogsCmd() *cobra.Command {
	var (
		kind  string
		limit int
		file  string
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List log entries from the wiki",
		Long:  "Fetch log entries of a given kind from the configured wiki and print them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			return withDeps(ctx, file, func(d *Deps) error {
				result, err := d.LogsHandler.Handle(ctx, entities.Kind(kind), limit)
				if err != nil {
					return err
				}

				if len(result.Entries) == 0 {
					fmt.Println("No log entries found.")
					return nil
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "LOGID\tTYPE\tACTION\tUSER\tTIMESTAMP\tCOMMENT")
				for _, e := range result.Entries {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
						e.LogID(), e.Type(), e.Action(), e.User(),
						e.Timestamp().Format("2006-01-02 15:04:05"), e.Comment())
				}
				if err := w.Flush(); err != nil {
					return err
				}

				for _, f := range result.Failures {
					fmt.Fprintf(os.Stderr, "skipped record %d (logid %d): %v\n", f.Index, f.LogID, f.Err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Entry kind to fetch (e.g. block, move); empty for all")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of entries")
	cmd.Flags().StringVar(&file, "file", "", "Read records from a JSON dump instead of the API")

	return cmd
}
