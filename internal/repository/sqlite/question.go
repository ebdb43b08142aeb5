package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository implements domain.QuestionRepository on SQLite
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ListCategories retrieves all categories
func (r *QuestionRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, type FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetCategory retrieves a category by its ID
func (r *QuestionRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx, "SELECT id, type FROM categories WHERE id = ?", id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

// ListQuestions retrieves all questions
func (r *QuestionRepository) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return r.queryQuestions(ctx, `
        SELECT id, question, answer, category, difficulty
        FROM questions
        ORDER BY id
    `)
}

// FindQuestionsByCategory retrieves the questions of one category
func (r *QuestionRepository) FindQuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	return r.queryQuestions(ctx, `
        SELECT id, question, answer, category, difficulty
        FROM questions
        WHERE category = ?
        ORDER BY id
    `, categoryID)
}

// GetQuestion retrieves a question by its ID
func (r *QuestionRepository) GetQuestion(ctx context.Context, id int) (*domain.Question, error) {
	query := `
        SELECT id, question, answer, category, difficulty
        FROM questions WHERE id = ?
    `

	var q domain.Question
	err := r.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &q, nil
}

// CreateQuestion creates a new question
func (r *QuestionRepository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	query := `
        INSERT INTO questions (question, answer, category, difficulty)
        VALUES (?, ?, ?, ?)
    `

	result, err := r.db.ExecContext(ctx, query, question.Question, question.Answer, question.Category, question.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read question id: %w", err)
	}

	question.ID = int(id)
	return nil
}

// DeleteQuestion deletes a question and returns the deleted row
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int) (*domain.Question, error) {
	query := `
        DELETE FROM questions WHERE id = ?
        RETURNING id, question, answer, category, difficulty
    `

	var q domain.Question
	err := r.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to delete question: %w", err)
	}
	return &q, nil
}

func (r *QuestionRepository) queryQuestions(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}
