package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/gate/internal/adapters/coord"
)

func (c *CLI) newCoordinatorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coordinator",
		Short: "Run the machine-wide slot coordinator",
		Long: "Serves slot acquisition over a Unix socket so concurrent gate\n" +
			"invocations across sessions serialize the same plugin/hook pair.\n" +
			"The process exits on its own after being idle.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idle, _ := cmd.Flags().GetDuration("idle-timeout")
			lifecycle := coord.NewLifecycle(idle)
			server := coord.NewServer(lifecycle, c.logger)
			return server.Serve(cmd.Context())
		},
	}
	cmd.Flags().Duration("idle-timeout", 10*time.Minute, "Shut down after this long without requests")
	return cmd
}
