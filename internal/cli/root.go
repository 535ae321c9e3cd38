package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tool-sites",
	Short: "Web-served developer utility collection",
	Long: `tool-sites serves a collection of small developer utilities over HTTP:
Base64 conversion, text diffing, timestamp conversion, random IP and
password generation, UUIDs, and Unicode escaping.

Each tool works as a rendered page or as a JSON endpoint for AJAX clients.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
