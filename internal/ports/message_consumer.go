package ports

import "context"

// MessageConsumer — цикл чтения сообщений из брокера.
// Run блокирует до отмены контекста или фатальной ошибки.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
