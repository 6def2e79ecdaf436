package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"entity-annotator/internal/annotation"
)

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the recognized entity annotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ANNOTATION\tVALUE\tEXAMPLE")

			for _, r := range annotation.DefaultRegistry().Rules() {
				example := "@" + r.Name
				value := "forbidden"

				if r.Constraint == annotation.ConstraintRequired {
					example = fmt.Sprintf("@%s(%s)", r.Name, r.Example)
					value = "required"
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, value, example)
			}

			return tw.Flush()
		},
	}
}
