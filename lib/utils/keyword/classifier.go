package keyword

import (
	"strings"

	"realloc-backend/lib/utils/textnorm"
)

// Classifier é uma tabela ordenada de regras (substrings -> categoria).
// A primeira regra cujo conjunto de substrings casa com o texto vence, o
// que permite estender a tabela sem tocar no código que a consome.
type Classifier[T any] struct {
	rules []rule[T]
}

type rule[T any] struct {
	substrings []string
	category   T
}

func NewClassifier[T any]() *Classifier[T] {
	return &Classifier[T]{}
}

// Add registra uma regra no fim da tabela. As substrings são normalizadas
// uma única vez no registro.
func (c *Classifier[T]) Add(category T, substrings ...string) *Classifier[T] {
	normalized := make([]string, 0, len(substrings))
	for _, s := range substrings {
		n := textnorm.Normalize(s)
		if n != "" {
			normalized = append(normalized, n)
		}
	}
	c.rules = append(c.rules, rule[T]{substrings: normalized, category: category})
	return c
}

// Classify devolve a categoria da primeira regra com substring presente no
// texto normalizado.
func (c *Classifier[T]) Classify(text string) (category T, ok bool) {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return category, false
	}
	for _, r := range c.rules {
		for _, sub := range r.substrings {
			if strings.Contains(normalized, sub) {
				return r.category, true
			}
		}
	}
	return category, false
}
