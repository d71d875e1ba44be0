package ports

import (
	"context"

	"github.com/Gunvolt24/buzzline/internal/domain"
)

// AlertDispatcher — отправка алертов о найденных ключевых словах.
// Вызывается на каждое обработанное сообщение; сам решает, что отправлять.
// Ошибки стока не возвращаются наверх — алерты best-effort.
type AlertDispatcher interface {
	Dispatch(ctx context.Context, alert domain.Alert)
}
