package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
	"github.com/Gunvolt24/buzzline/pkg/metrics"
)

// MessageService — прикладная логика конвейера сообщений (без знаний о транспорте).
type MessageService struct {
	repo       ports.MessageRepository // прямой доступ к хранилищу
	cache      ports.MessageCache      // прямой доступ к кэшу
	log        ports.Logger            // прямой доступ к логгеру
	decoder    ports.MessageDecoder    // разбор сырого payload
	classifier ports.MessageClassifier // категория по ключевым словам
	scorer     ports.SentimentScorer   // оценка тональности
	alerts     ports.AlertDispatcher   // алерты по найденным ключевым словам
}

// NewMessageService — DI-конструктор.
func NewMessageService(
	repo ports.MessageRepository,
	cache ports.MessageCache,
	log ports.Logger,
	decoder ports.MessageDecoder,
	classifier ports.MessageClassifier,
	scorer ports.SentimentScorer,
	alerts ports.AlertDispatcher,
) *MessageService {
	return &MessageService{
		repo:       repo,
		cache:      cache,
		log:        log,
		decoder:    decoder,
		classifier: classifier,
		scorer:     scorer,
		alerts:     alerts,
	}
}

// ProcessMessage — обработать сырое сообщение из Kafka (raw JSON).
// Шаги:
//  1. разбор payload (вернёт validate.ErrInvalidMessage при некорректном JSON);
//  2. классификация по ключевым словам + оценка тональности;
//  3. сохранение записи в БД;
//  4. алерт — всегда после попытки сохранения, независимо от её исхода;
//  5. при успехе — запись в кэш.
func (s *MessageService) ProcessMessage(ctx context.Context, raw []byte) error {
	msg, err := s.decoder.Decode(ctx, raw)
	if err != nil {
		s.log.Warnf(ctx, "decode failed err=%v", err)
		return fmt.Errorf("decode message: %w", err)
	}

	category, keyword := s.classifier.Classify(ctx, msg.Text)
	score, label := s.scorer.Score(ctx, msg.Text)

	rec := &domain.ProcessedMessage{
		Text:            msg.Text,
		Author:          msg.Author,
		SourceTimestamp: msg.Timestamp,
		Category:        category,
		Keyword:         keyword,
		SentimentLabel:  label,
		SentimentScore:  score,
		MessageLength:   utf8.RuneCountInString(msg.Text),
		ProcessedAt:     time.Now().UTC(),
	}

	id, saveErr := s.repo.Save(ctx, rec)

	// Алерт уходит даже при ошибке сохранения: наблюдатели узнают о совпадении,
	// а сама запись доедет при повторной доставке.
	s.alerts.Dispatch(ctx, domain.Alert{
		Keyword:   keyword,
		Category:  category,
		Text:      msg.Text,
		Timestamp: rec.ProcessedAt,
	})

	if saveErr != nil {
		s.log.Errorf(ctx, "repo.Save failed category=%s err=%v", category, saveErr)
		return fmt.Errorf("save message: %w", saveErr)
	}
	rec.ID = id
	metrics.MessagesPersisted.WithLabelValues(rec.Category).Inc()

	if setErr := s.cache.Set(ctx, rec); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed id=%d err=%v", id, setErr)
	}

	s.log.Infof(ctx, "message saved id=%d category=%s sentiment=%s", id, category, label)
	return nil
}

// GetMessage — получить запись по ID: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (*ProcessedMessage, nil) или (nil, nil), если записи нет.
func (s *MessageService) GetMessage(ctx context.Context, id int64) (*domain.ProcessedMessage, error) {
	if msg, found := s.cache.Get(ctx, id); found {
		s.log.Infof(ctx, "cache hit for message=%d", id)
		return msg, nil
	}
	s.log.Infof(ctx, "cache miss for message=%d", id)

	start := time.Now()
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed id=%d err=%v", id, err)
		return nil, err
	}

	if msg != nil {
		// Кэшируем результат
		if setErr := s.cache.Set(ctx, msg); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed id=%d err=%v", id, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch id=%d took=%s", id, time.Since(start))
	return msg, nil
}

// RecentMessages — проксирование в репозиторий.
func (s *MessageService) RecentMessages(ctx context.Context, limit int) ([]*domain.ProcessedMessage, error) {
	return s.repo.ListRecent(ctx, limit)
}

// MessagesByCategory — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *MessageService) MessagesByCategory(
	ctx context.Context,
	category string,
	limit, offset int,
) ([]*domain.ProcessedMessage, error) {
	return s.repo.ListByCategory(ctx, category, limit, offset)
}

// CategoryStats — распределение записей по категориям.
func (s *MessageService) CategoryStats(ctx context.Context) ([]domain.CategoryStat, error) {
	return s.repo.CategoryCounts(ctx)
}

// WarmUpCache — прогрев кэша последними N записями из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *MessageService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.repo.ListRecent(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListRecent failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d messages in %s", len(list), time.Since(start))
	return nil
}
