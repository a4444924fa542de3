package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"unitgen/internal/parser"
)

var listSchema string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the quantities, units and rules of a schema",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSchema, "schema", "s", "", "Quantity schema file (required)")
	_ = listCmd.MarkFlagRequired("schema")
}

func runList(cmd *cobra.Command, args []string) error {
	schema, err := parser.Load(listSchema)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, q := range schema.Quantities {
		fmt.Fprintf(w, "%s\tbase %s\n", q.Name, q.Base)
		for _, u := range q.Units {
			fmt.Fprintf(w, "  %s\t%s\t%g\n", u.Name, u.Expr, u.Factor)
		}
	}
	if len(schema.Derivations) > 0 {
		fmt.Fprintln(w, "rules")
		for _, d := range schema.Derivations {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}
	return w.Flush()
}
