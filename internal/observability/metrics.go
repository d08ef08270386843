package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Calculation outcomes used as metric labels.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	calculationsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitplan",
		Subsystem: "engine",
		Name:      "calculations_total",
		Help:      "Number of calculations by variant and outcome.",
	}, []string{"variant", "outcome"})

	flagsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitplan",
		Subsystem: "engine",
		Name:      "flags_total",
		Help:      "Number of advisory and blocking flags attached to calculations.",
	}, []string{"flag"})

	programStoredGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitplan",
		Subsystem: "programs",
		Name:      "last_program_stored_timestamp_seconds",
		Help:      "Unix timestamp of the most recently stored program.",
	})

	followUpFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitplan",
		Subsystem: "programs",
		Name:      "follow_up_failures_total",
		Help:      "Cache invalidations and event publishes that failed after a program was stored.",
	}, []string{"step"})

	catalogSizeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitplan",
		Subsystem: "catalog",
		Name:      "exercises",
		Help:      "Number of exercises available to the plan generator.",
	})
)

func init() {
	prometheus.MustRegister(calculationsCounter, flagsCounter, programStoredGauge, followUpFailures, catalogSizeGauge)
}

// RecordCalculation counts one calculation and the flags it carried.
func RecordCalculation(variant, outcome string, flags []string) {
	if variant == "" {
		variant = "unknown"
	}
	calculationsCounter.WithLabelValues(variant, outcome).Inc()
	for _, f := range flags {
		flagsCounter.WithLabelValues(f).Inc()
	}
}

// RecordProgramStored updates the persistence watermark.
func RecordProgramStored(ts time.Time) {
	if ts.IsZero() {
		return
	}
	programStoredGauge.Set(float64(ts.Unix()))
}

// RecordFollowUpFailure counts a failed post-save step ("invalidate" or
// "publish").
func RecordFollowUpFailure(step string) {
	followUpFailures.WithLabelValues(step).Inc()
}

// RecordCatalogSize publishes the current catalog size.
func RecordCatalogSize(n int) {
	catalogSizeGauge.Set(float64(n))
}
