package ports

import (
	"context"

	"github.com/Gunvolt24/buzzline/internal/domain"
)

// MessageRepository — хранилище обработанных сообщений (append-only).
type MessageRepository interface {
	// Save — вставить запись и вернуть назначенный базой ID.
	Save(ctx context.Context, msg *domain.ProcessedMessage) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ProcessedMessage, error)
	ListRecent(ctx context.Context, n int) ([]*domain.ProcessedMessage, error)
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*domain.ProcessedMessage, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryStat, error)
}
