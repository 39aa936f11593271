package commands

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/wafer/internal/ui/output"
	"go.trai.ch/wafer/internal/ui/style"
)

func (c *CLI) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the recognized platforms with their launch mechanism and overlay flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := output.New(cmd.OutOrStdout())
			accent := termenv.RGBColor(string(style.Accent))

			for _, p := range c.app.Platforms() {
				overlay := p.Overlay()
				tokens := make([]string, len(overlay))
				for i, f := range overlay {
					tokens[i] = f.Token()
				}

				name := out.String(fmt.Sprintf("%-8s", p.String())).Foreground(accent).String()
				if _, err := fmt.Fprintf(out, "%s %-12s %s\n", name, p.Mechanism(), strings.Join(tokens, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
