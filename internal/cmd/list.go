package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/puzzlekit/solutions"
)

// newListCommand creates the list command
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range solutions.All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Day %02d  %s\n", s.Day(), s.Title()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
