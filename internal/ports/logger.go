package ports

import "context"

// Logger — минимальный контракт логгера для всех слоёв приложения.
// Контекст нужен реализации для обогащения записей метаданными запроса
// (request_id, trace_id — см. pkg/ctxmeta).
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // информационные сообщения
	Warnf(ctx context.Context, format string, args ...any)  // предупреждения
	Errorf(ctx context.Context, format string, args ...any) // ошибки
}
