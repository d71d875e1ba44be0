package sentiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/jonreiter/govader"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
	"github.com/Gunvolt24/buzzline/pkg/metrics"
)

// Проверка реализации интерфейса.
var _ ports.SentimentScorer = (*Scorer)(nil)

// ErrUnscorableText — базовая ошибка анализатора: текст оценить нельзя.
// Наверх не пробрасывается — гасится внутри Score нейтральной заглушкой.
var ErrUnscorableText = errors.New("text is not scorable")

// Границы меток: score > 0.1 — positive, score < -0.1 — negative,
// ровно на границе — neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Scorer — оценка тональности на VADER (словарный анализатор).
// Анализатор детерминирован: одинаковый текст всегда даёт одинаковую оценку.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
	log      ports.Logger
}

// NewScorer — конструктор.
func NewScorer(log ports.Logger) *Scorer {
	return &Scorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
		log:      log,
	}
}

// Score — оценить текст: численная оценка в [-1, 1] и метка.
// Сбой анализатора не останавливает конвейер: запись получает 0.0/neutral,
// сбой логируется и учитывается в метрике.
func (s *Scorer) Score(ctx context.Context, text string) (float64, string) {
	score, err := s.compound(text)
	if err != nil {
		metrics.SentimentFallbacks.Inc()
		s.log.Warnf(ctx, "sentiment scoring failed: %v (fallback to neutral)", err)
		return 0, domain.SentimentNeutral
	}
	return score, Label(score)
}

// compound — сырая составная оценка VADER с проверками входа и выхода.
func (s *Scorer) compound(text string) (float64, error) {
	if !utf8.ValidString(text) {
		return 0, fmt.Errorf("%w: некорректная utf-8 последовательность", ErrUnscorableText)
	}

	c := s.analyzer.PolarityScores(text).Compound
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0, fmt.Errorf("%w: неконечная оценка %v", ErrUnscorableText, c)
	}
	return clamp(c), nil
}

// Label — метка по численной оценке. Границы исключаются:
// ровно 0.1 и -0.1 — это neutral.
func Label(score float64) string {
	switch {
	case score > positiveThreshold:
		return domain.SentimentPositive
	case score < negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

// clamp — оценка всегда в [-1, 1], даже если анализатор вернул больше.
func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
