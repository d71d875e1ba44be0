package ports

import (
	"context"

	"github.com/Gunvolt24/buzzline/internal/domain"
)

// MessageDecoder — разбор сырого payload из Kafka в доменное сообщение.
type MessageDecoder interface {
	Decode(ctx context.Context, raw []byte) (*domain.Message, error)
}
