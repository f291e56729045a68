// Package main implements the seeker CLI: the HTTP service and one-shot
// classification from the terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version information
var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seeker",
	Short: "Classify web search results into topic categories",
	Long: `seeker trains a text classifier on web search results for a set of
(term, category) examples and uses it to label the results of new queries.

Configuration is read from config.yaml, a .env file and SEEKER_* environment
variables. SEEKER_SEARCH_API_KEY is required.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(examplesCmd)
}
