package service

import (
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Search returns the questions whose text contains term, ignoring case.
// Input order is preserved.
func Search(all []domain.Question, term string) []domain.Question {
	needle := strings.ToLower(term)

	matches := make([]domain.Question, 0)
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches
}

// CurrentCategory returns the most frequent category among questions.
// On a tie the category encountered first wins.
func CurrentCategory(questions []domain.Question) (int, bool) {
	if len(questions) == 0 {
		return 0, false
	}

	counts := make(map[int]int)
	order := make([]int, 0)
	for _, q := range questions {
		if _, seen := counts[q.Category]; !seen {
			order = append(order, q.Category)
		}
		counts[q.Category]++
	}

	best := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[best] {
			best = category
		}
	}
	return best, true
}
