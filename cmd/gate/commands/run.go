package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/engine/orchestrator"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <plugin> <hook>",
		Short: "Run a hook against every matching directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			only, _ := cmd.Flags().GetString("only")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			failFast, _ := cmd.Flags().GetBool("fail-fast")
			skipDeps, _ := cmd.Flags().GetBool("skip-deps")
			verbose, _ := cmd.Flags().GetBool("verbose")
			debug, _ := cmd.Flags().GetBool("debug")

			code, err := c.app.RunHook(cmd.Context(), args[0], args[1], orchestrator.Options{
				Only:     only,
				NoCache:  noCache,
				FailFast: failFast,
				SkipDeps: skipDeps,
				Verbose:  verbose,
				Debug:    debug,
			}, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if code == domain.ExitValidationFailed {
				return domain.ErrValidationFailed
			}
			return nil
		},
	}
	cmd.Flags().String("only", "", "Restrict execution to a single target directory")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass change detection and force execution")
	cmd.Flags().Bool("fail-fast", false, "Abort remaining directories on the first failure")
	cmd.Flags().Bool("skip-deps", false, "Skip dependency hooks")
	cmd.Flags().BoolP("verbose", "v", false, "Stream hook output instead of capturing it")
	cmd.Flags().Bool("debug", false, "Write artifact files even on success")
	return cmd
}
