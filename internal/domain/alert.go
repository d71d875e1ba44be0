package domain

import "time"

// Alert — событие «в сообщении найдено ключевое слово». Живёт в рамках
// одной итерации обработки: уходит в сток одной JSON-строкой и нигде
// не сохраняется.
type Alert struct {
	Keyword   string    `json:"keyword"`
	Category  string    `json:"category"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
