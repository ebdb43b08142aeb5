package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// QuestionRepository defines the interface for question and category storage.
// Every list operation returns records ordered by id ascending.
type QuestionRepository interface {
	// ListCategories retrieves all categories
	ListCategories(ctx context.Context) ([]Category, error)

	// GetCategory retrieves a category by its ID
	GetCategory(ctx context.Context, id int) (*Category, error)

	// ListQuestions retrieves all questions
	ListQuestions(ctx context.Context) ([]Question, error)

	// FindQuestionsByCategory retrieves the questions of one category
	FindQuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// GetQuestion retrieves a question by its ID
	GetQuestion(ctx context.Context, id int) (*Question, error)

	// CreateQuestion inserts a question and assigns its ID
	CreateQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion deletes a question and returns the removed record
	DeleteQuestion(ctx context.Context, id int) (*Question, error)
}

// Category represents a labeled group of questions
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question represents a trivia question. Category is not guaranteed to
// reference an existing category.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
