package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/wikilog/internal/domain/services"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List entry kinds with specialized representations",
		Long: "Print the kinds this build recognizes with a dedicated entry type. " +
			"All other kinds the wiki reports still work through the generic representation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range services.NewRegistry().Kinds() {
				fmt.Println(kind)
			}
			return nil
		},
	}
}
