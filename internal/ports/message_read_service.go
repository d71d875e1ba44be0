package ports

import (
	"context"

	"github.com/Gunvolt24/buzzline/internal/domain"
)

// MessageReadService — сервис чтения обработанных сообщений.
type MessageReadService interface {
	GetMessage(ctx context.Context, id int64) (*domain.ProcessedMessage, error)
	RecentMessages(ctx context.Context, limit int) ([]*domain.ProcessedMessage, error)
	MessagesByCategory(ctx context.Context, category string, limit, offset int) ([]*domain.ProcessedMessage, error)
	CategoryStats(ctx context.Context) ([]domain.CategoryStat, error)
}
