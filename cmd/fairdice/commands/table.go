package commands

import (
	"github.com/spf13/cobra"

	"fairdice/internal/protocol/probability"
	"fairdice/internal/render"
)

func tableCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <die> <die> <die> [die...]",
		Short: "Print the probability that each die beats each other die",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := o.loadDice(args)
			if err != nil {
				return hint(err)
			}
			return render.HelpTable(cmd.OutOrStdout(), ds, probability.Compute(ds))
		},
	}
	return cmd
}
