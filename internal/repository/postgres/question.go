package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		pool: pool,
	}
}

// ListCategories retrieves all categories
func (r *QuestionRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, type
		FROM categories
		ORDER BY id
	`)
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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// GetCategory retrieves a category by its ID
func (r *QuestionRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, type
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
		WHERE category = $1
		ORDER BY id
	`, categoryID)
}

// GetQuestion retrieves a question by its ID
func (r *QuestionRepository) GetQuestion(ctx context.Context, id int) (*domain.Question, error) {
	var q domain.Question
	err := r.pool.QueryRow(ctx, `
		SELECT id, question, answer, category, difficulty
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.pool.QueryRow(ctx, query,
		question.Question,
		question.Answer,
		question.Category,
		question.Difficulty,
	).Scan(&question.ID)
	if err != nil {
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

// DeleteQuestion deletes a question and returns the deleted row
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int) (*domain.Question, error) {
	var q domain.Question
	err := r.pool.QueryRow(ctx, `
		DELETE FROM questions
		WHERE id = $1
		RETURNING id, question, answer, category, difficulty
	`, id).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to delete question: %w", err)
	}
	return &q, nil
}

func (r *QuestionRepository) queryQuestions(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	questions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Question, error) {
		var q domain.Question
		err := row.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
		return q, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan questions: %w", err)
	}

	return questions, nil
}
