package alert_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Gunvolt24/buzzline/internal/alert"
	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// failWriter — сток, который всегда отказывает.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink is down") }

func TestDispatch_WritesOneJSONLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := alert.NewDispatcher(&buf, nopLogger{})

	ts := time.Date(2026, 2, 10, 12, 30, 0, 0, time.UTC)
	d.Dispatch(context.Background(), domain.Alert{
		Keyword:   "meme",
		Category:  "humor",
		Text:      "Check out this meme, so funny!",
		Timestamp: ts,
	})

	line := buf.String()
	if line == "" || line[len(line)-1] != '\n' {
		t.Fatalf("алерт должен быть одной строкой с \\n на конце, got %q", line)
	}

	var got domain.Alert
	if err := json.Unmarshal([]byte(line), &got); err != nil {
		t.Fatalf("строка алерта должна быть валидным JSON: %v", err)
	}
	if got.Keyword != "meme" || got.Category != "humor" || got.Text != "Check out this meme, so funny!" {
		t.Fatalf("поля алерта не совпадают: %+v", got)
	}
	if !got.Timestamp.Equal(ts) {
		t.Fatalf("timestamp: got=%v want=%v", got.Timestamp, ts)
	}
}

func TestDispatch_OtherCategory_NoOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := alert.NewDispatcher(&buf, nopLogger{})

	d.Dispatch(context.Background(), domain.Alert{
		Category:  domain.CategoryOther,
		Text:      "ugh, what a terrible day",
		Timestamp: time.Now(),
	})

	if buf.Len() != 0 {
		t.Fatalf("для категории-сентинела алерт не отправляется, got %q", buf.String())
	}
}

func TestDispatch_EmptyCategory_NoOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := alert.NewDispatcher(&buf, nopLogger{})

	d.Dispatch(context.Background(), domain.Alert{Text: "no category at all"})
	if buf.Len() != 0 {
		t.Fatalf("без категории алерт не отправляется, got %q", buf.String())
	}
}

func TestDispatch_SinkFailure_SwallowedAndCounted(t *testing.T) {
	// Без t.Parallel: проверяем глобальный счётчик потерь.
	d := alert.NewDispatcher(failWriter{}, nopLogger{})

	before := promtestutil.ToFloat64(metrics.AlertsDropped)

	// Не должно паниковать и не должно ничего возвращать наверх.
	d.Dispatch(context.Background(), domain.Alert{
		Keyword:   "Python",
		Category:  "tech",
		Text:      "I love Python",
		Timestamp: time.Now(),
	})

	if got := promtestutil.ToFloat64(metrics.AlertsDropped); got != before+1 {
		t.Fatalf("AlertsDropped: got=%v want=%v", got, before+1)
	}
}

func TestDispatch_SeveralAlerts_OneLineEach(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := alert.NewDispatcher(&buf, nopLogger{})

	for _, a := range []domain.Alert{
		{Keyword: "meme", Category: "humor", Text: "meme #1", Timestamp: time.Now()},
		{Keyword: "game", Category: "gaming", Text: "game #2", Timestamp: time.Now()},
	} {
		d.Dispatch(context.Background(), a)
	}

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("want 2 строки алертов, got %d: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if !json.Valid(line) {
			t.Fatalf("каждая строка должна быть валидным JSON: %q", line)
		}
	}
}
