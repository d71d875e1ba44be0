package ports

import "context"

// SentimentScorer — оценка тональности текста.
type SentimentScorer interface {
	// Score — вернуть численную оценку в [-1, 1] и её метку.
	// Сбой анализатора не является ошибкой: возвращается нейтральная заглушка.
	Score(ctx context.Context, text string) (score float64, label string)
}
