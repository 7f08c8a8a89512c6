package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/erc7824/fieldsig/pkg/sign"
)

// Metrics are the counters recorded during one command run. They are written
// to a node-exporter textfile when FIELDSIG_METRICS_FILE is set.
type Metrics struct {
	CommandsTotal      *prometheus.CounterVec
	CommandDuration    *prometheus.HistogramVec
	VerificationsTotal *prometheus.CounterVec
	KeysGenerated      prometheus.Counter
}

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// NewMetrics registers the metrics with registry, or with
// prometheus.DefaultRegisterer when registry is nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldsig_commands_total",
				Help: "The total number of commands run, by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fieldsig_command_duration_seconds",
				Help:    "Command run time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
			[]string{"command"},
		),
		VerificationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fieldsig_verifications_total",
				Help: "The total number of signature checks, by result",
			},
			[]string{"result"},
		),
		KeysGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "fieldsig_keys_generated_total",
			Help: "The total number of key pairs generated",
		}),
	}
}

// ObserveCommand records one run of command.
func (m *Metrics) ObserveCommand(command string, started time.Time, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(time.Since(started).Seconds())
}

// ObserveVerification records the result of a signature check.
func (m *Metrics) ObserveVerification(result sign.Result) {
	m.VerificationsTotal.WithLabelValues(result.String()).Inc()
}

// WriteTextfile writes everything gathered by g to path in the text exposition
// format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
