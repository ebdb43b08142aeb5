package service

import (
	"math/rand/v2"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// AnyCategory selects questions from every category
const AnyCategory = 0

// Selector picks quiz questions uniformly at random.
type Selector struct {
	intn func(n int) int
}

// NewSelector creates a selector drawing from intn. A nil intn uses the
// goroutine-safe top-level generator of math/rand/v2.
func NewSelector(intn func(n int) int) *Selector {
	if intn == nil {
		intn = rand.IntN
	}
	return &Selector{intn: intn}
}

// Next picks one question of categoryID (or any category for AnyCategory)
// whose id is not in previous. It returns ErrQuizExhausted when nothing is left.
func (s *Selector) Next(pool []domain.Question, categoryID int, previous []int) (domain.Question, error) {
	eligible := Eligible(pool, categoryID, previous)
	if len(eligible) == 0 {
		return domain.Question{}, ErrQuizExhausted
	}
	return eligible[s.intn(len(eligible))], nil
}

// Eligible filters pool to the candidates of categoryID not listed in previous
func Eligible(pool []domain.Question, categoryID int, previous []int) []domain.Question {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	out := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		if categoryID != AnyCategory && q.Category != categoryID {
			continue
		}
		if _, ok := seen[q.ID]; ok {
			continue
		}
		out = append(out, q)
	}
	return out
}
