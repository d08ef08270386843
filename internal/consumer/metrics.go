package consumer

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Handling outcomes used as metric labels.
const (
	OutcomeComputed = "computed"
	OutcomeInvalid  = "invalid"
	OutcomeRejected = "rejected"
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitplan",
		Subsystem: "consumer",
		Name:      "messages_processed_total",
		Help:      "Number of Kafka messages handled by the questionnaire consumer, by outcome.",
	}, []string{"topic", "event_type", "outcome"})

	lastMessageGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fitplan",
		Subsystem: "consumer",
		Name:      "last_message_timestamp_seconds",
		Help:      "Timestamp of the most recent Kafka message handled.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(processedCounter, lastMessageGauge)
}

// RecordOutcome counts a handled message.
func RecordOutcome(msg Message, outcome string) {
	processedCounter.WithLabelValues(msg.Topic, msg.EventType(), outcome).Inc()
	if !msg.Timestamp.IsZero() {
		lastMessageGauge.WithLabelValues(msg.Topic).Set(float64(msg.Timestamp.Unix()))
	}
}

// RecordFailed counts a message whose handler returned an error.
func RecordFailed(msg Message) {
	RecordOutcome(msg, OutcomeFailed)
}
