package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/xproc"
	"github.com/Paintersrp/xproc/internal/metrics"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <command> [args...]",
		Short: "Spawn a detached process and print its pid",
		Long: "Start spawns the command in its own session with stdin, stdout and\n" +
			"stderr connected to the null device, prints the pid and returns. The\n" +
			"process keeps running after the terminal session ends.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := xproc.SpawnWithArgs(args[0], args[1:])
			metrics.ObserveSpawn(err)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), proc.Pid())
			return nil
		},
	}
}
