package ports

import (
	"context"

	"github.com/Gunvolt24/buzzline/internal/domain"
)

// MessageCache — интерфейс кэша обработанных сообщений.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1); возврат копий сущности.
type MessageCache interface {
	// Get — вернуть запись по ID; (msg, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, id int64) (*domain.ProcessedMessage, bool)

	// Set — сохранить/обновить запись в кэше.
	Set(ctx context.Context, msg *domain.ProcessedMessage) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	// Реализация должна поддерживать отмену контекста.
	WarmUp(ctx context.Context, msgs []*domain.ProcessedMessage) error
}
