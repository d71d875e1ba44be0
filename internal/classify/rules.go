package classify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Rule — одно правило классификации: ключевое слово и его категория.
type Rule struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// DefaultRules — встроенная таблица ключевых слов. Порядок имеет значение:
// при нескольких совпадениях выигрывает правило, стоящее раньше.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "meme", Category: "humor"},
		{Keyword: "Python", Category: "tech"},
		{Keyword: "JavaScript", Category: "tech"},
		{Keyword: "recipe", Category: "food"},
		{Keyword: "travel", Category: "travel"},
		{Keyword: "movie", Category: "entertainment"},
		{Keyword: "game", Category: "gaming"},
	}
}

// LoadRules — читает таблицу правил из JSON-файла (массив объектов
// {"keyword": ..., "category": ...}); порядок элементов сохраняется.
func LoadRules(path string) ([]Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var rules []Rule
	if err := dec.Decode(&rules); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("parse rules file %s: лишние данные после массива правил", path)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s: таблица правил пуста", path)
	}
	for i, r := range rules {
		if r.Keyword == "" {
			return nil, fmt.Errorf("rules file %s: правило %d без ключевого слова", path, i)
		}
		if r.Category == "" {
			return nil, fmt.Errorf("rules file %s: правило %d без категории", path, i)
		}
	}
	return rules, nil
}
