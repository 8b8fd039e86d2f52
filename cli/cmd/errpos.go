package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilyakooo0/parseable-macos-sub000/sqltext"
)

var errposMessage string

var errposCmd = &cobra.Command{
	Use:   "errpos [file]",
	Short: "Map a remote error message onto the query text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		pos, ok := sqltext.ParsePosition(errposMessage)
		if !ok {
			fmt.Println("no position in message")
			return nil
		}
		fmt.Printf("line %d, column %d\n", pos.Line, pos.Column)
		span, ok := sqltext.ErrorHighlightRange(pos.Line, pos.Column, text)
		if !ok {
			fmt.Println("no token under position")
			return nil
		}
		fmt.Printf("[%d:%d] %s\n", span.Start, span.End, text[span.Start:span.End])
		return nil
	},
}

func init() {
	errposCmd.Flags().StringVarP(&errposMessage, "message", "m", "", "error message from the remote engine")
	_ = errposCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(errposCmd)
}
