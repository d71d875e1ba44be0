//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/testutil"
)

// --- Бенчмарки ---

// Базовый бенч: GetMessage (валидная запись) — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_GetMessage(b *testing.B) {
	log := nopLogger{}
	msg := testutil.MakeProcessedMessage()
	msg.ID = 1
	h := NewHandler(svcOne{m: &msg}, log, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServeGET(b, lean, "/message/1")
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServeGET(b, full, "/message/1")
	})
}

// Потолок без маршалинга: та же запись, но заранее закодированный JSON
// Показывает, сколько «ест» encoding/json в вашем хендлере.
func BenchmarkHTTP_GetMessage_PreMarshaledBytes(b *testing.B) {
	msg := testutil.MakeProcessedMessage()
	msg.ID = 1
	raw, _ := json.Marshal(msg)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// отдельный эндпоинт, который просто отдаёт готовый []byte
	r.GET("/message/:id", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServeGET(b, r, "/message/1")
}

// Выборка последних: 10/50/100 — измеряем рост аллокаций и времени
func BenchmarkHTTP_ListRecent(b *testing.B) {
	log := nopLogger{}

	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			// готовим список из n записей
			list := make([]*domain.ProcessedMessage, 0, n)
			for i := 0; i < n; i++ {
				m := testutil.MakeProcessedMessage()
				m.ID = int64(n - i) // свежие впереди
				list = append(list, &m)
			}
			h := NewHandler(svcList{list: list}, log, 2*time.Second)

			lean := makeLeanRouter(h)
			benchServeGET(b, lean, "/messages/recent?limit="+strconv.Itoa(n))
		})
	}
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	log := nopLogger{}
	msg := testutil.MakeProcessedMessage()
	msg.ID = 1
	h := NewHandler(svcOne{m: &msg}, log, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusNotFound {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стабы ---

type svcOne struct{ m *domain.ProcessedMessage }

func (s svcOne) GetMessage(context.Context, int64) (*domain.ProcessedMessage, error) { return s.m, nil }
func (s svcOne) RecentMessages(context.Context, int) ([]*domain.ProcessedMessage, error) {
	return []*domain.ProcessedMessage{s.m}, nil
}
func (s svcOne) MessagesByCategory(context.Context, string, int, int) ([]*domain.ProcessedMessage, error) {
	return []*domain.ProcessedMessage{s.m}, nil
}
func (s svcOne) CategoryStats(context.Context) ([]domain.CategoryStat, error) {
	return []domain.CategoryStat{{Category: s.m.Category, Count: 1}}, nil
}

// для списка: заранее подготовленная выборка N элементов (без аллокаций на каждом вызове)
type svcList struct{ list []*domain.ProcessedMessage }

func (s svcList) GetMessage(context.Context, int64) (*domain.ProcessedMessage, error) {
	return s.list[0], nil
}
func (s svcList) RecentMessages(context.Context, int) ([]*domain.ProcessedMessage, error) {
	return s.list, nil
}
func (s svcList) MessagesByCategory(context.Context, string, int, int) ([]*domain.ProcessedMessage, error) {
	return s.list, nil
}
func (s svcList) CategoryStats(context.Context) ([]domain.CategoryStat, error) {
	return []domain.CategoryStat{{Category: "food", Count: int64(len(s.list))}}, nil
}

// --- функции-помощники ---

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/message/:id", h.getMessageByID)
	r.GET("/messages/recent", h.listRecentMessages)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "", "")
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			// вычитываем тело
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
