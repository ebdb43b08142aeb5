// Package memory provides an in-process question store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository implements domain.QuestionRepository in memory
type QuestionRepository struct {
	mu         sync.RWMutex
	categories map[int]domain.Category
	questions  map[int]domain.Question
	nextID     int
}

// NewQuestionRepository creates a store holding categories and questions.
// Questions keep their ids; new ids continue after the largest one.
func NewQuestionRepository(categories []domain.Category, questions []domain.Question) *QuestionRepository {
	r := &QuestionRepository{
		categories: make(map[int]domain.Category, len(categories)),
		questions:  make(map[int]domain.Question, len(questions)),
	}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	for _, q := range questions {
		r.questions[q.ID] = q
		r.nextID = max(r.nextID, q.ID)
	}
	return r
}

// ListCategories retrieves all categories
func (r *QuestionRepository) ListCategories(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetCategory retrieves a category by its ID
func (r *QuestionRepository) GetCategory(_ context.Context, id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

// ListQuestions retrieves all questions
func (r *QuestionRepository) ListQuestions(_ context.Context) ([]domain.Question, error) {
	return r.filter(func(domain.Question) bool { return true }), nil
}

// FindQuestionsByCategory retrieves the questions of one category
func (r *QuestionRepository) FindQuestionsByCategory(_ context.Context, categoryID int) ([]domain.Question, error) {
	return r.filter(func(q domain.Question) bool { return q.Category == categoryID }), nil
}

// GetQuestion retrieves a question by its ID
func (r *QuestionRepository) GetQuestion(_ context.Context, id int) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return &q, nil
}

// CreateQuestion creates a new question
func (r *QuestionRepository) CreateQuestion(_ context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	question.ID = r.nextID
	r.questions[question.ID] = *question
	return nil
}

// DeleteQuestion removes a question and returns it
func (r *QuestionRepository) DeleteQuestion(_ context.Context, id int) (*domain.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	delete(r.questions, id)
	return &q, nil
}

func (r *QuestionRepository) filter(keep func(domain.Question) bool) []domain.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
