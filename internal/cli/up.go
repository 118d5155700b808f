package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/xproc"
	"github.com/Paintersrp/xproc/internal/cliutil"
	"github.com/Paintersrp/xproc/internal/config"
	"github.com/Paintersrp/xproc/internal/metrics"
)

func newUpCmd() *cobra.Command {
	var (
		procfile    string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Spawn every process defined in a procfile",
		Long: "Up spawns each process in the procfile detached from the terminal and\n" +
			"reports one record per spawn. Processes marked capture are treated as\n" +
			"short-lived tasks: up drains their output and reports it line by line\n" +
			"before returning.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.Load(procfile)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				go serveMetrics(metricsAddr, cmd.ErrOrStderr())
			}

			enc := json.NewEncoder(cmd.OutOrStdout())

			type capturedProc struct {
				name string
				proc *xproc.Process
			}
			var captured []capturedProc

			for _, name := range doc.Names() {
				spec := doc.Processes[name]
				var opts []xproc.Option
				if spec.Capture {
					opts = append(opts, xproc.WithCapture())
				}
				proc, err := xproc.SpawnWithArgs(spec.Command[0], spec.Command[1:], opts...)
				metrics.ObserveSpawn(err)
				if err != nil {
					return fmt.Errorf("spawn %s: %w", name, err)
				}
				cliutil.EncodeLogEvent(enc, cmd.ErrOrStderr(), cliutil.Event{
					Process: name,
					Pid:     proc.Pid(),
					Message: "spawned",
				})
				if spec.Capture {
					captured = append(captured, capturedProc{name: name, proc: proc})
				}
			}

			// Captured processes run concurrently; their output is drained
			// and reported in name order once each one closes its streams.
			for _, cp := range captured {
				output, errOutput, err := drainBoth(cp.proc)
				if err != nil {
					return fmt.Errorf("drain %s: %w", cp.name, err)
				}
				emitOutput(enc, cmd.ErrOrStderr(), cp.name, cp.proc.Pid(), output, cliutil.SourceStdout)
				emitOutput(enc, cmd.ErrOrStderr(), cp.name, cp.proc.Pid(), errOutput, cliutil.SourceStderr)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&procfile, "file", "f", "procfile.yaml", "Path to procfile definition")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address to serve Prometheus metrics on while up runs")

	return cmd
}

func serveMetrics(addr string, stderr io.Writer) {
	handler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})
	if err := http.ListenAndServe(addr, handler); err != nil {
		fmt.Fprintf(stderr, "error: metrics server: %v\n", err)
	}
}
