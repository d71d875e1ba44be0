//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/buzzline/internal/alert"
	cachemem "github.com/Gunvolt24/buzzline/internal/cache/memory"
	"github.com/Gunvolt24/buzzline/internal/classify"
	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
	pgrepo "github.com/Gunvolt24/buzzline/internal/repo/postgres"
	"github.com/Gunvolt24/buzzline/internal/sentiment"
	"github.com/Gunvolt24/buzzline/internal/testutil"
	rest "github.com/Gunvolt24/buzzline/internal/transport/http"
	"github.com/Gunvolt24/buzzline/internal/usecase"
	"github.com/Gunvolt24/buzzline/pkg/logger"
	"github.com/Gunvolt24/buzzline/pkg/validate"
)

// newReadService — настоящий сервис поверх репозитория (для читающих маршрутов).
func newReadService(repo ports.MessageRepository, logg ports.Logger) *usecase.MessageService {
	return usecase.NewMessageService(
		repo,
		cachemem.NewLRUCacheTTL(100, time.Minute),
		logg,
		validate.NewMessageDecoder(),
		classify.NewClassifier(classify.DefaultRules()),
		sentiment.NewScorer(logg),
		alert.NewDispatcher(io.Discard, logg),
	)
}

// 1) GET /message/:id — 200 для сохранённой записи
func TestHTTP_GetMessage_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	repo := pgrepo.NewMessageRepository(pg.Pool)
	svc := newReadService(repo, logg)

	// seed: одна запись через репозиторий
	msg := testutil.MakeProcessedMessage()
	id, err := repo.Save(ctx, &msg)
	require.NoError(t, err)

	// http
	h := rest.NewHandler(svc, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/message/" + strconv.FormatInt(id, 10))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got domain.ProcessedMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, id, got.ID)
	require.Equal(t, msg.Text, got.Text)
	require.Equal(t, msg.Category, got.Category)
}

// 2) GET /message/:id — 404 когда записи нет
func TestHTTP_GetMessage_NotFound_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	repo := pgrepo.NewMessageRepository(pg.Pool)
	svc := newReadService(repo, logg)

	h := rest.NewHandler(svc, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/message/100500")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "message not found", got["error"])
}

// 3) POST /message/:id — 405 Method Not Allowed + заголовок Allow: GET
func TestHTTP_GetMessage_MethodNotAllowed_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(noOpService{}, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/message/1", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, "GET", resp.Header.Get("Allow"))

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "method not allowed", got["error"])
}

// 4) GET /messages/category/:category — пагинация (limit/offset) и фильтрация
func TestHTTP_ListByCategory_Pagination_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	repo := pgrepo.NewMessageRepository(pg.Pool)
	svc := newReadService(repo, logg)

	// seed: 3 записи "tech" + 1 "food"
	for i := 0; i < 3; i++ {
		m := testutil.MakeProcessedMessage(testutil.WithCategory("tech", "Python"))
		_, err := repo.Save(ctx, &m)
		require.NoError(t, err)
	}
	mFood := testutil.MakeProcessedMessage()
	_, err = repo.Save(ctx, &mFood)
	require.NoError(t, err)

	// router
	h := rest.NewHandler(svc, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	// limit=2 offset=1 — ожидаем 2 записи "tech"
	resp, err := http.Get(ts.URL + "/messages/category/tech?limit=2&offset=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.ProcessedMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	require.Len(t, got, 2)
	for _, m := range got {
		require.Equal(t, "tech", m.Category)
	}
}

// 5) GET /messages/recent + GET /stats/categories на общем наборе
func TestHTTP_Recent_And_Stats_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	defer func() { _ = stop(context.Background()) }()
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	repo := pgrepo.NewMessageRepository(pg.Pool)
	svc := newReadService(repo, logg)

	// seed: 2 "tech" + 1 "food"
	for i := 0; i < 2; i++ {
		m := testutil.MakeProcessedMessage(testutil.WithCategory("tech", "Python"))
		_, err := repo.Save(ctx, &m)
		require.NoError(t, err)
	}
	mFood := testutil.MakeProcessedMessage()
	_, err = repo.Save(ctx, &mFood)
	require.NoError(t, err)

	h := rest.NewHandler(svc, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	// recent: свежие впереди
	resp, err := http.Get(ts.URL + "/messages/recent?limit=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var recent []domain.ProcessedMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&recent))
	require.Len(t, recent, 2)
	require.Greater(t, recent[0].ID, recent[1].ID)

	// stats: точные счётчики по категориям
	respS, err := http.Get(ts.URL + "/stats/categories")
	require.NoError(t, err)
	defer respS.Body.Close()
	require.Equal(t, http.StatusOK, respS.StatusCode)

	var stats []domain.CategoryStat
	require.NoError(t, json.NewDecoder(respS.Body).Decode(&stats))

	counts := make(map[string]int64, len(stats))
	for _, st := range stats {
		counts[st.Category] = st.Count
	}
	require.Equal(t, int64(2), counts["tech"])
	require.Equal(t, int64(1), counts["food"])
}

// 6) /ping, /metrics, 404 на неизвестный маршрут
func TestHTTP_Health_Metrics_And_404_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(noOpService{}, logg, 2*time.Second)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	// /ping
	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readAll(t, resp.Body)
	require.Equal(t, "pong", string(body))

	// /metrics
	respM, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer respM.Body.Close()
	require.Equal(t, http.StatusOK, respM.StatusCode)
	require.NotEmpty(t, readAll(t, respM.Body)) // достаточно, что не пусто

	// 404
	resp404, err := http.Get(ts.URL + "/no/such/route")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&got))
	require.Equal(t, "route not found", got["error"])
}

// 7) Таймаут запросов: Handler с коротким reqTimeout должен вернуть 500
func TestHTTP_GetMessage_Timeout_500_TC(t *testing.T) {
	// Логгер и роутер со slowService, таймаут очень короткий
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(slowService{}, logg, 10*time.Millisecond)
	r := rest.NewRouter(h, "", "")
	ts := httptest.NewServer(r)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/message/1")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Ожидаем 500, так как slowService вернёт ctx.Err() по таймауту
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "internal server error", got["error"])
}

// --- функции помощники ---

// noOpService — простая заглушка для роутера, где неважно, что вернёт бизнес-логика.
type noOpService struct{}

func (noOpService) GetMessage(context.Context, int64) (*domain.ProcessedMessage, error) {
	return nil, nil
}
func (noOpService) RecentMessages(context.Context, int) ([]*domain.ProcessedMessage, error) {
	return nil, nil
}
func (noOpService) MessagesByCategory(context.Context, string, int, int) ([]*domain.ProcessedMessage, error) {
	return nil, nil
}
func (noOpService) CategoryStats(context.Context) ([]domain.CategoryStat, error) {
	return nil, nil
}

// slowService — всегда ждёт ctx.Done() и возвращает ошибку контекста (для проверки таймаута 500).
type slowService struct{}

func (slowService) GetMessage(ctx context.Context, _ int64) (*domain.ProcessedMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (slowService) RecentMessages(ctx context.Context, _ int) ([]*domain.ProcessedMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (slowService) MessagesByCategory(ctx context.Context, _ string, _, _ int) ([]*domain.ProcessedMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (slowService) CategoryStats(ctx context.Context) ([]domain.CategoryStat, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// readAll — просто прочитать тело.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
