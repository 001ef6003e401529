package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var (
	importRuns = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "talent",
		Subsystem: "import",
		Name:      "runs_total",
		Help:      "Total number of import runs broken down by outcome.",
	}, []string{"result"})

	importDuration = promauto.With(registry).NewGauge(prometheus.GaugeOpts{
		Namespace: "talent",
		Subsystem: "import",
		Name:      "last_run_duration_seconds",
		Help:      "Wall time of the last import run.",
	})

	importPersons = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "talent",
		Subsystem: "import",
		Name:      "persons_total",
		Help:      "Total number of person records broken down by inserted/skipped.",
	}, []string{"result"})

	importAbilityRows = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "talent",
		Subsystem: "import",
		Name:      "ability_rows_total",
		Help:      "Total number of ability_score rows broken down by normalization outcome.",
	}, []string{"level"})
)

// MetricsGatherer exposes the import metrics, e.g. for a node-exporter textfile.
func MetricsGatherer() prometheus.Gatherer {
	return registry
}

func recordRun(result string, d time.Duration) {
	importRuns.WithLabelValues(result).Inc()
	importDuration.Set(d.Seconds())
}

func recordSummary(sum Summary) {
	importPersons.WithLabelValues("inserted").Add(float64(sum.PersonsInserted))
	importPersons.WithLabelValues("skipped").Add(float64(sum.PersonsSkipped))
	importAbilityRows.WithLabelValues("classified").Add(float64(sum.Levels.Classified))
	importAbilityRows.WithLabelValues("unclassified").Add(float64(sum.Levels.Unclassified))
	importAbilityRows.WithLabelValues("numeric").Add(float64(sum.Levels.Numeric))
	importAbilityRows.WithLabelValues("empty").Add(float64(sum.Levels.Empty))
}
