package domain

import "time"

// CategoryOther — категория-сентинел: присваивается, когда в тексте
// не найдено ни одно ключевое слово из таблицы.
const CategoryOther = "other"

// Метки тональности, производные от численной оценки.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Message — разобранный payload из Kafka: обязательный текст и
// необязательные метаданные (автор, временная метка продюсера).
type Message struct {
	Text      string `json:"text"`
	Author    string `json:"author,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ProcessedMessage — результат обработки одного сообщения: категория,
// тональность и служебные поля. Хранится в append-only таблице messages;
// ID назначает база при вставке.
type ProcessedMessage struct {
	ID              int64     `json:"id"`
	Text            string    `json:"text"`
	Author          string    `json:"author,omitempty"`
	SourceTimestamp string    `json:"source_timestamp,omitempty"`
	Category        string    `json:"category"`
	Keyword         string    `json:"keyword,omitempty"`
	SentimentLabel  string    `json:"sentiment_label"`
	SentimentScore  float64   `json:"sentiment_score"`
	MessageLength   int       `json:"message_length"`
	ProcessedAt     time.Time `json:"processed_at"`
}

// CategoryStat — количество обработанных сообщений по категории.
type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}
