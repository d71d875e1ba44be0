package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_skipped_total",
			Help: "Number of malformed messages skipped permanently",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	MessagesPersisted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_persisted_total",
			Help: "Number of processed messages stored",
		},
		[]string{"category"},
	)
	AlertsFired = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_fired_total",
			Help: "Number of alerts written to the sink",
		},
		[]string{"category"},
	)
	AlertsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_dropped_total",
			Help: "Number of alerts lost due to sink failures",
		},
	)
	SentimentFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sentiment_fallbacks_total",
			Help: "Number of messages scored with the neutral fallback",
		},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — повторные вызовы безопасны: регистрация выполняется один раз.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesSkipped, KafkaMessagesFailed,
			MessagesPersisted, AlertsFired, AlertsDropped, SentimentFallbacks,
			CacheOps, CacheSize,
		)
	})
}
