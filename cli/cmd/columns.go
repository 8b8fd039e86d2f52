package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilyakooo0/parseable-macos-sub000/sqltext"
)

var columnsCmd = &cobra.Command{
	Use:   "columns [file]",
	Short: "Locate the SELECT column list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		span, ok := sqltext.SelectColumnListRange(text)
		if !ok {
			return nil
		}
		fmt.Printf("[%d:%d] %s\n", span.Start, span.End, text[span.Start:span.End])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
