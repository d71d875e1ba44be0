package classify

import (
	"context"
	"strings"

	"github.com/Gunvolt24/buzzline/internal/domain"
	"github.com/Gunvolt24/buzzline/internal/ports"
)

// Проверка реализации интерфейса.
var _ ports.MessageClassifier = (*Classifier)(nil)

// Classifier — классификатор текста по упорядоченной таблице ключевых слов.
// Поиск: подстрока с учётом регистра, выигрывает первое правило по порядку таблицы.
type Classifier struct {
	rules []Rule
}

// NewClassifier — конструктор. Копирует таблицу правил: классификатор
// неизменяем после создания и безопасен для конкурентного использования.
func NewClassifier(rules []Rule) *Classifier {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Classifier{rules: copied}
}

// Classify — вернуть категорию и найденное ключевое слово.
// Если ни одно слово не входит в текст как подстрока — (CategoryOther, "").
func (c *Classifier) Classify(_ context.Context, text string) (category, keyword string) {
	for _, r := range c.rules {
		if strings.Contains(text, r.Keyword) {
			return r.Category, r.Keyword
		}
	}
	return domain.CategoryOther, ""
}
