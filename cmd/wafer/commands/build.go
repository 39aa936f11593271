package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run distclean, configure and build with the resolved flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), resolveOptions(cmd))
		},
	}
	addResolveFlags(cmd)
	return cmd
}
