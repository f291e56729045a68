package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/seeker/backend/internal/usecase"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Print the built-in training examples",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TERM\tCATEGORY")
		for _, ex := range usecase.DefaultExamples() {
			fmt.Fprintf(w, "%s\t%s\n", ex.Term, ex.Category)
		}
		return w.Flush()
	},
}
