package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gate/internal/engine/orchestrator"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <plugin> <hook>",
		Short: "Check one changed file and print a block/continue decision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			debug, _ := cmd.Flags().GetBool("debug")

			_, err := c.app.CheckFile(cmd.Context(), args[0], args[1], file, orchestrator.Options{
				NoCache: noCache,
				Debug:   debug,
			}, cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().String("file", "", "Path of the changed file to check")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass change detection and force execution")
	cmd.Flags().Bool("debug", false, "Write artifact files even on success")
	return cmd
}
