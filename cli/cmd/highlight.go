package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilyakooo0/parseable-macos-sub000/sqltext"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file]",
	Short: "Show syntax classification spans",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		for _, s := range sqltext.Classify(text) {
			fmt.Printf("[%d:%d] %-8s %q\n", s.Span.Start, s.Span.End, s.Style, text[s.Span.Start:s.Span.End])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(highlightCmd)
}
