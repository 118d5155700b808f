package metrics

import (
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registry = prometheus.NewRegistry()

	spawnsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xproc",
		Name:      "spawns_total",
		Help:      "Total spawn attempts, by outcome.",
	}, []string{"outcome"})

	killsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "xproc",
		Name:      "kill_requests_total",
		Help:      "Total termination requests issued, by outcome.",
	}, []string{"outcome"})

	buildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "xproc",
		Name:      "build_info",
		Help:      "Build metadata for the running xproc binary.",
	}, []string{"go_version", "vcs_revision", "vcs_modified"})

	buildInfoOnce sync.Once
)

func init() {
	registry.MustRegister(spawnsTotal, killsTotal, buildInfo)
}

// Registry returns the Prometheus registry containing all xproc metrics.
func Registry() *prometheus.Registry {
	return registry
}

// ObserveSpawn records the outcome of a spawn attempt.
func ObserveSpawn(err error) {
	spawnsTotal.WithLabelValues(outcome(err)).Inc()
}

// ObserveKill records the outcome of a termination request.
func ObserveKill(err error) {
	killsTotal.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// EmitBuildInfo publishes build metadata about the running binary.
func EmitBuildInfo() {
	buildInfoOnce.Do(func() {
		labels := prometheus.Labels{
			"go_version":   runtime.Version(),
			"vcs_revision": "",
			"vcs_modified": "",
		}
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.GoVersion != "" {
				labels["go_version"] = info.GoVersion
			}
			for _, setting := range info.Settings {
				switch setting.Key {
				case "vcs.revision":
					labels["vcs_revision"] = setting.Value
				case "vcs.modified":
					labels["vcs_modified"] = setting.Value
				}
			}
		}
		buildInfo.With(labels).Set(1)
	})
}
