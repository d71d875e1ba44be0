package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
)

// ErrInvalidMessage — базовая ошибка декодирования: payload нельзя разобрать
// в доменное сообщение. Потребитель по этой ошибке коммитит оффсет —
// повторная доставка такого сообщения бессмысленна.
var ErrInvalidMessage = errors.New("invalid message")

// Проверка реализации интерфейса.
var _ ports.MessageDecoder = (*MessageDecoder)(nil)

// MessageDecoder — разбор сырого JSON-payload из Kafka.
// Контракт: поле text обязательно (пустая строка допустима, null — нет);
// неизвестные поля терпимы — продюсеры шлют разный набор метаданных;
// мусор после JSON-объекта — ошибка.
type MessageDecoder struct{}

// NewMessageDecoder — конструктор.
func NewMessageDecoder() *MessageDecoder { return &MessageDecoder{} }

// Decode — разобрать payload в доменное сообщение.
// Любая причина отказа заворачивается в ErrInvalidMessage.
func (d *MessageDecoder) Decode(_ context.Context, raw []byte) (*domain.Message, error) {
	// text — указатель: отличаем отсутствие поля (и null) от пустой строки.
	var payload struct {
		Text      *string `json:"text"`
		Author    string  `json:"author"`
		Timestamp string  `json:"timestamp"`
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: некорректный json: %v", ErrInvalidMessage, err)
	}
	// гарантируем отсутствие мусора после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: лишние данные после json-объекта", ErrInvalidMessage)
	}

	if payload.Text == nil {
		return nil, fmt.Errorf("%w: поле text обязательно", ErrInvalidMessage)
	}

	return &domain.Message{
		Text:      *payload.Text,
		Author:    payload.Author,
		Timestamp: payload.Timestamp,
	}, nil
}
