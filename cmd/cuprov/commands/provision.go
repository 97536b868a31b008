package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/cuprov/internal/adapters/telemetry/progrock"
	"go.trai.ch/cuprov/internal/app"
	"golang.org/x/term"
)

func (c *CLI) newProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Discover the CUDA toolchain and build native artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")

			// The wiring installs a silent telemetry sink. Swap in the
			// progrock recorder when a human is watching; Close renders the
			// recorded run to stderr.
			if term.IsTerminal(int(os.Stderr.Fd())) && !watch {
				rec := progrock.New(os.Stderr)
				defer func() { _ = rec.Close() }()
				c.app.SetTelemetry(rec)
			}

			opts := app.RunOptions{Force: force}
			if watch {
				return c.app.Watch(cmd.Context(), opts)
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild even when the configuration is unchanged")
	cmd.Flags().BoolP("watch", "w", false, "Rerun provisioning whenever a native source changes")
	return cmd
}
