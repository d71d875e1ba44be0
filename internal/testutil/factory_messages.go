package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/Gunvolt24/buzzline/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakePayload — сырой JSON входного сообщения (как приходит из Kafka).
func MakePayload(text string) []byte {
	b, _ := json.Marshal(domain.Message{
		Text:      text,
		Author:    "user-" + UniqSuffix(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return b
}

// Мини-генератор валидной записи обработки.
// ProcessedAt обрезается до секунд, чтобы сравнения переживали round-trip через Postgres.
func MakeProcessedMessage(opts ...func(*domain.ProcessedMessage)) domain.ProcessedMessage {
	now := time.Now().UTC().Truncate(time.Second)
	text := "Just tried a new recipe, turned out great"

	m := domain.ProcessedMessage{
		Text:            text,
		Author:          "user-" + UniqSuffix(),
		SourceTimestamp: now.Format(time.RFC3339),
		Category:        "food",
		Keyword:         "recipe",
		SentimentLabel:  domain.SentimentPositive,
		SentimentScore:  0.42,
		MessageLength:   utf8.RuneCountInString(text),
		ProcessedAt:     now,
	}

	for _, fn := range opts {
		fn(&m)
	}
	return m
}

// WithText — переопределить текст (длина пересчитывается).
func WithText(text string) func(*domain.ProcessedMessage) {
	return func(m *domain.ProcessedMessage) {
		m.Text = text
		m.MessageLength = utf8.RuneCountInString(text)
	}
}

func WithCategory(category, keyword string) func(*domain.ProcessedMessage) {
	return func(m *domain.ProcessedMessage) {
		m.Category = category
		m.Keyword = keyword
	}
}

func WithSentiment(score float64, label string) func(*domain.ProcessedMessage) {
	return func(m *domain.ProcessedMessage) {
		m.SentimentScore = score
		m.SentimentLabel = label
	}
}

func WithProcessedAt(ts time.Time) func(*domain.ProcessedMessage) {
	return func(m *domain.ProcessedMessage) { m.ProcessedAt = ts.UTC().Truncate(time.Second) }
}
