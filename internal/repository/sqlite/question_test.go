package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func newTestRepository(t *testing.T) *QuestionRepository {
	t.Helper()

	db, err := database.ConnectSQLite(":memory:", true)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewQuestionRepository(db)
}

func TestCategoriesAreSeeded(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, domain.Category{ID: 1, Type: "Science"}, categories[0])
	assert.Equal(t, domain.Category{ID: 6, Type: "Sports"}, categories[5])

	category, err := repo.GetCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", category.Type)

	_, err = repo.GetCategory(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestQuestionLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &domain.Question{Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 3}
	second := &domain.Question{Question: "What is the heaviest organ?", Answer: "The Liver", Category: 1, Difficulty: 4}
	require.NoError(t, repo.CreateQuestion(ctx, first))
	require.NoError(t, repo.CreateQuestion(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	all, err := repo.ListQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Question{*first, *second}, all)

	art, err := repo.FindQuestionsByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Question{*first}, art)

	got, err := repo.GetQuestion(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, *second, *got)

	deleted, err := repo.DeleteQuestion(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *deleted)

	_, err = repo.DeleteQuestion(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	_, err = repo.GetQuestion(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestFindQuestionsByCategoryEmpty(t *testing.T) {
	repo := newTestRepository(t)

	questions, err := repo.FindQuestionsByCategory(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
