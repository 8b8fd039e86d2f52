package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/ilyakooo0/parseable-macos-sub000/sqltext"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream for a query",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		for _, tok := range sqltext.Tokenize(text) {
			fmt.Println(repr.String(tok))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
