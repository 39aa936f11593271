package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// resolvedJSON is the --json output of the resolve command.
type resolvedJSON struct {
	Platform    string   `json:"platform"`
	Mechanism   string   `json:"mechanism"`
	Argv        []string `json:"argv"`
	Fingerprint string   `json:"fingerprint"`
}

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the toolchain command line without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := c.app.Resolve(cmd.Context(), resolveOptions(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			asJSON, _ := cmd.Flags().GetBool("json")
			onlyFingerprint, _ := cmd.Flags().GetBool("fingerprint")

			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resolvedJSON{
					Platform:    spec.Platform().String(),
					Mechanism:   spec.Mechanism().String(),
					Argv:        spec.Argv(),
					Fingerprint: spec.Fingerprint(),
				})
			case onlyFingerprint:
				_, err = fmt.Fprintln(out, spec.Fingerprint())
				return err
			default:
				for _, arg := range spec.Argv() {
					if _, err := fmt.Fprintln(out, arg); err != nil {
						return err
					}
				}
				return nil
			}
		},
	}
	addResolveFlags(cmd)
	cmd.Flags().Bool("json", false, "Print platform, mechanism, argv and fingerprint as JSON")
	cmd.Flags().Bool("fingerprint", false, "Print only the fingerprint of the command line")
	cmd.MarkFlagsMutuallyExclusive("json", "fingerprint")
	return cmd
}
