package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sqltext",
	Short:        "Poke the SQL editor engine against real queries",
	SilenceUsage: true,
	Long: `Developer harness for the editor's SQL text-analysis engine.
Each subcommand reads a query from a file argument (or stdin) and runs one
engine entry point against it.`,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readInput returns the SQL to analyze: the named file, or stdin when no
// argument is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read query: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
