package ports

import "context"

// MessageClassifier — определение категории текста по таблице ключевых слов.
type MessageClassifier interface {
	// Classify — вернуть категорию и найденное ключевое слово.
	// Если ни одно слово не найдено — категория-сентинел и пустое слово.
	Classify(ctx context.Context, text string) (category, keyword string)
}
