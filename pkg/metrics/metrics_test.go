package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/buzzline/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestKafkaCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeConsumed := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("buzzline"))
	beforeProcessed := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("buzzline"))
	beforeSkipped := testutil.ToFloat64(metrics.KafkaMessagesSkipped.WithLabelValues("buzzline"))
	beforeFailed := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("buzzline"))

	metrics.KafkaMessagesConsumed.WithLabelValues("buzzline").Inc()
	metrics.KafkaMessagesProcessed.WithLabelValues("buzzline").Inc()
	metrics.KafkaMessagesSkipped.WithLabelValues("buzzline").Inc()
	metrics.KafkaMessagesFailed.WithLabelValues("buzzline").Inc()

	if got := testutil.ToFloat64(metrics.KafkaMessagesConsumed.WithLabelValues("buzzline")); got != beforeConsumed+1 {
		t.Fatalf("KafkaMessagesConsumed: got=%v want=%v", got, beforeConsumed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesProcessed.WithLabelValues("buzzline")); got != beforeProcessed+1 {
		t.Fatalf("KafkaMessagesProcessed: got=%v want=%v", got, beforeProcessed+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesSkipped.WithLabelValues("buzzline")); got != beforeSkipped+1 {
		t.Fatalf("KafkaMessagesSkipped: got=%v want=%v", got, beforeSkipped+1)
	}
	if got := testutil.ToFloat64(metrics.KafkaMessagesFailed.WithLabelValues("buzzline")); got != beforeFailed+1 {
		t.Fatalf("KafkaMessagesFailed: got=%v want=%v", got, beforeFailed+1)
	}
}

func TestPipelineCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforePersisted := testutil.ToFloat64(metrics.MessagesPersisted.WithLabelValues("tech"))
	beforeFired := testutil.ToFloat64(metrics.AlertsFired.WithLabelValues("tech"))
	beforeDropped := testutil.ToFloat64(metrics.AlertsDropped)
	beforeFallbacks := testutil.ToFloat64(metrics.SentimentFallbacks)

	metrics.MessagesPersisted.WithLabelValues("tech").Inc()
	metrics.AlertsFired.WithLabelValues("tech").Inc()
	metrics.AlertsDropped.Inc()
	metrics.SentimentFallbacks.Inc()

	if got := testutil.ToFloat64(metrics.MessagesPersisted.WithLabelValues("tech")); got != beforePersisted+1 {
		t.Fatalf("MessagesPersisted: got=%v want=%v", got, beforePersisted+1)
	}
	if got := testutil.ToFloat64(metrics.AlertsFired.WithLabelValues("tech")); got != beforeFired+1 {
		t.Fatalf("AlertsFired: got=%v want=%v", got, beforeFired+1)
	}
	if got := testutil.ToFloat64(metrics.AlertsDropped); got != beforeDropped+1 {
		t.Fatalf("AlertsDropped: got=%v want=%v", got, beforeDropped+1)
	}
	if got := testutil.ToFloat64(metrics.SentimentFallbacks); got != beforeFallbacks+1 {
		t.Fatalf("SentimentFallbacks: got=%v want=%v", got, beforeFallbacks+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}
