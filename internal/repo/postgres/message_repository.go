package postgres

import (
	"context"
	"errors"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что MessageRepository удовлетворяет интерфейсу MessageRepository.
var _ ports.MessageRepository = (*MessageRepository)(nil)

// MessageRepository — реализация репозитория сообщений на Postgres (pgxpool).
// Таблица append-only: каждая обработка сообщения добавляет новую строку.
type MessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository - конструктор MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository { return &MessageRepository{pool: pool} }

// messageColumns — общий список колонок выборок; порядок совпадает со scanMessage.
const messageColumns = `id, text, author, source_ts, category, keyword, sentiment_label, sentiment_score, message_length, processed_at`

// scanMessage — чтение одной строки в доменную структуру.
// Подходит и для QueryRow (pgx.Row), и для итерации по pgx.Rows.
func scanMessage(row pgx.Row) (*domain.ProcessedMessage, error) {
	var m domain.ProcessedMessage
	if err := row.Scan(
		&m.ID, &m.Text, &m.Author, &m.SourceTimestamp, &m.Category, &m.Keyword,
		&m.SentimentLabel, &m.SentimentScore, &m.MessageLength, &m.ProcessedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save — вставить запись обработки и вернуть назначенный базой ID.
// Ошибки соединения помечаются ErrConnectionDown (см. classifyError).
func (r *MessageRepository) Save(ctx context.Context, msg *domain.ProcessedMessage) (int64, error) {
	if msg == nil {
		return 0, errors.New("message is required")
	}
	if msg.Category == "" {
		return 0, errors.New("category is required")
	}
	if msg.SentimentLabel == "" {
		return 0, errors.New("sentiment_label is required")
	}

	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (
			text, author, source_ts, category, keyword,
			sentiment_label, sentiment_score, message_length, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		msg.Text, msg.Author, msg.SourceTimestamp, msg.Category, msg.Keyword,
		msg.SentimentLabel, msg.SentimentScore, msg.MessageLength, msg.ProcessedAt,
	).Scan(&id)
	if err != nil {
		return 0, classifyError("insert message", err)
	}
	return id, nil
}

// GetByID — получить запись по ID. Если не нашли, возвращает (nil, nil).
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.ProcessedMessage, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+messageColumns+`
		FROM messages WHERE id = $1
	`, id)

	m, err := scanMessage(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError("select message", err)
	}
	return m, nil
}

// ListRecent — последние N записей (новые первыми).
// Порядок по id DESC: id растёт монотонно, сортировка дешевле, чем по processed_at.
func (r *MessageRepository) ListRecent(ctx context.Context, n int) ([]*domain.ProcessedMessage, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		ORDER BY id DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, classifyError("select recent", err)
	}
	defer rows.Close()

	result := make([]*domain.ProcessedMessage, 0, n)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, classifyError("scan recent", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("recent rows", err)
	}
	return result, nil
}

// ListByCategory — постраничный список записей категории (новые первыми).
func (r *MessageRepository) ListByCategory(ctx context.Context, category string, limit, offset int) ([]*domain.ProcessedMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE category = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`, category, limit, offset)
	if err != nil {
		return nil, classifyError("select by category", err)
	}
	defer rows.Close()

	result := make([]*domain.ProcessedMessage, 0, limit)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, classifyError("scan by category", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("category rows", err)
	}
	return result, nil
}

// CategoryCounts — распределение записей по категориям.
// Сортировка: сначала самые частые, при равенстве — по имени категории.
func (r *MessageRepository) CategoryCounts(ctx context.Context) ([]domain.CategoryStat, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, COUNT(*) AS cnt
		FROM messages
		GROUP BY category
		ORDER BY cnt DESC, category ASC
	`)
	if err != nil {
		return nil, classifyError("select category counts", err)
	}
	defer rows.Close()

	var result []domain.CategoryStat
	for rows.Next() {
		var stat domain.CategoryStat
		if err := rows.Scan(&stat.Category, &stat.Count); err != nil {
			return nil, classifyError("scan category count", err)
		}
		result = append(result, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError("category counts rows", err)
	}
	return result, nil
}
