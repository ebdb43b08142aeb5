package service

import "github.com/zizouhuweidi/trivia/internal/domain"

// QuestionView is the response shape of a question
type QuestionView struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// FormatQuestion converts a stored question into its response shape
func FormatQuestion(q domain.Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

// FormatQuestions formats every question in order. The result is never nil.
func FormatQuestions(questions []domain.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, FormatQuestion(q))
	}
	return views
}

// FormatCategories builds an id to type lookup
func FormatCategories(categories []domain.Category) map[int]string {
	out := make(map[int]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
