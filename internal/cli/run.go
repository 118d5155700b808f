package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/xproc"
	"github.com/Paintersrp/xproc/internal/cliutil"
	"github.com/Paintersrp/xproc/internal/metrics"
)

func newRunCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Spawn a detached process, capture its output and relay it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := xproc.SpawnWithArgs(args[0], args[1:], xproc.WithCapture())
			metrics.ObserveSpawn(err)
			if err != nil {
				return err
			}

			var enc *json.Encoder
			if jsonOut {
				enc = json.NewEncoder(cmd.OutOrStdout())
				cliutil.EncodeLogEvent(enc, cmd.ErrOrStderr(), cliutil.Event{
					Process: args[0],
					Pid:     proc.Pid(),
					Message: "spawned",
				})
			}

			output, errOutput, err := drainBoth(proc)
			if err != nil {
				return err
			}

			if jsonOut {
				emitOutput(enc, cmd.ErrOrStderr(), args[0], proc.Pid(), output, cliutil.SourceStdout)
				emitOutput(enc, cmd.ErrOrStderr(), args[0], proc.Pid(), errOutput, cliutil.SourceStderr)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), output)
			fmt.Fprint(cmd.ErrOrStderr(), errOutput)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit structured JSON records instead of raw output")

	return cmd
}

// drainBoth reads stdout and stderr concurrently so neither pipe can fill up
// and stall the child.
func drainBoth(proc *xproc.Process) (string, string, error) {
	var (
		wg        sync.WaitGroup
		errOutput string
		errRead   error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		errOutput, errRead = proc.Stderr()
	}()

	output, err := proc.Stdout()
	wg.Wait()
	if err != nil {
		return "", "", err
	}
	if errRead != nil {
		return "", "", errRead
	}
	return output, errOutput, nil
}

// emitOutput writes one record per non-empty captured line.
func emitOutput(enc *json.Encoder, stderr io.Writer, name string, pid uint32, output, source string) {
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		if line == "" {
			continue
		}
		cliutil.EncodeLogEvent(enc, stderr, cliutil.Event{
			Process: name,
			Pid:     pid,
			Message: line,
			Source:  source,
		})
	}
}
