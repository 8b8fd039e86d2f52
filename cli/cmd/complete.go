package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ilyakooo0/parseable-macos-sub000/sqltext"
)

var (
	completeAt     int
	completeTables []string
	completeFields []string
)

var completeCmd = &cobra.Command{
	Use:   "complete [file]",
	Short: "Show completions at a byte offset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		at := completeAt
		if at < 0 || at > len(text) {
			at = len(text)
		}
		items, prefix, span := sqltext.Completions(text, at, completeTables, parseSchemaFields(completeFields))
		fmt.Printf("prefix %q at [%d:%d]\n", prefix, span.Start, span.End)
		for _, item := range items {
			if item.Detail != "" {
				fmt.Printf("%s\t%s\n", item.Text, item.Detail)
				continue
			}
			fmt.Println(item.Text)
		}
		return nil
	},
}

// parseSchemaFields turns repeated "name:type" flag values into schema
// fields. The type part is optional.
func parseSchemaFields(values []string) []sqltext.SchemaField {
	var fields []sqltext.SchemaField
	for _, v := range values {
		name, typ, _ := strings.Cut(v, ":")
		if name == "" {
			continue
		}
		fields = append(fields, sqltext.SchemaField{Name: name, Type: typ})
	}
	return fields
}

func init() {
	completeCmd.Flags().IntVar(&completeAt, "at", -1, "cursor byte offset (default: end of input)")
	completeCmd.Flags().StringSliceVar(&completeTables, "table", nil, "known stream names, repeatable")
	completeCmd.Flags().StringSliceVar(&completeFields, "field", nil, "schema fields as name:type, repeatable")
	rootCmd.AddCommand(completeCmd)
}
