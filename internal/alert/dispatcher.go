package alert

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
	"github.com/Gunvolt24/buzzline/pkg/metrics"
)

// Проверка реализации интерфейса.
var _ ports.AlertDispatcher = (*Dispatcher)(nil)

// Dispatcher — отправка алертов в сток (по умолчанию stdout): одна строка —
// один JSON-объект. Отправка best-effort: ошибка стока логируется и
// считается в метрике, но никогда не влияет на обработку сообщения.
type Dispatcher struct {
	sink io.Writer
	log  ports.Logger

	mu sync.Mutex // строки в стоке не должны перемешиваться
}

// NewDispatcher — конструктор. nil-сток заменяется на stdout.
func NewDispatcher(sink io.Writer, log ports.Logger) *Dispatcher {
	if sink == nil {
		sink = os.Stdout
	}
	return &Dispatcher{sink: sink, log: log}
}

// Dispatch — отправить алерт, если найдено ключевое слово.
// Для категории-сентинела алерт не формируется.
func (d *Dispatcher) Dispatch(ctx context.Context, alert domain.Alert) {
	if alert.Category == "" || alert.Category == domain.CategoryOther {
		return
	}

	line, err := json.Marshal(alert)
	if err != nil {
		metrics.AlertsDropped.Inc()
		d.log.Warnf(ctx, "alert marshal failed keyword=%s: %v (dropped)", alert.Keyword, err)
		return
	}
	line = append(line, '\n')

	d.mu.Lock()
	_, err = d.sink.Write(line)
	d.mu.Unlock()

	if err != nil {
		metrics.AlertsDropped.Inc()
		d.log.Warnf(ctx, "alert sink write failed keyword=%s: %v (dropped)", alert.Keyword, err)
		return
	}

	metrics.AlertsFired.WithLabelValues(alert.Category).Inc()
	d.log.Infof(ctx, "alert fired category=%s keyword=%s", alert.Category, alert.Keyword)
}
