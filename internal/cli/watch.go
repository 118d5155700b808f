package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/xproc"
	"github.com/Paintersrp/xproc/internal/config"
	"github.com/Paintersrp/xproc/internal/metrics"
	"github.com/Paintersrp/xproc/internal/tui"
)

func newWatchCmd() *cobra.Command {
	var procfile string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Spawn a procfile and manage the processes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("watch requires an interactive terminal")
			}

			doc, err := config.Load(procfile)
			if err != nil {
				return err
			}

			entries := make([]tui.Entry, 0, len(doc.Processes))
			for _, name := range doc.Names() {
				spec := doc.Processes[name]
				proc, err := xproc.SpawnWithArgs(spec.Command[0], spec.Command[1:])
				metrics.ObserveSpawn(err)
				if err != nil {
					return fmt.Errorf("spawn %s: %w", name, err)
				}
				entries = append(entries, tui.Entry{
					Name:    name,
					Pid:     proc.Pid(),
					Command: strings.Join(spec.Command, " "),
				})
			}

			return tui.New(entries).Run()
		},
	}

	cmd.Flags().StringVarP(&procfile, "file", "f", "procfile.yaml", "Path to procfile definition")

	return cmd
}
