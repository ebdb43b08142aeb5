package service

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func questionsWithCategories(categories ...int) []domain.Question {
	out := make([]domain.Question, 0, len(categories))
	for i, c := range categories {
		out = append(out, domain.Question{ID: i + 1, Question: "q", Category: c})
	}
	return out
}

func TestFormatQuestion(t *testing.T) {
	q := domain.Question{ID: 4, Question: "What?", Answer: "That", Category: 2, Difficulty: 5}
	assert.Equal(t, QuestionView{ID: 4, Question: "What?", Answer: "That", Difficulty: 5, Category: 2}, FormatQuestion(q))
}

func TestFormatEmptyInputs(t *testing.T) {
	views := FormatQuestions(nil)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	assert.Empty(t, FormatCategories(nil))
}

func TestFormatCategories(t *testing.T) {
	got := FormatCategories([]domain.Category{{ID: 1, Type: "Science"}, {ID: 4, Type: "History"}})
	assert.Equal(t, map[int]string{1: "Science", 4: "History"}, got)
}

func TestPaginate(t *testing.T) {
	all := questionsWithCategories(make([]int, 23)...)

	tests := []struct {
		name     string
		page     int
		wantIDs  []int
		wantSize int
	}{
		{"first page", 1, []int{1, 10}, 10},
		{"last partial page", 3, []int{21, 23}, 3},
		{"past the end", 4, nil, 0},
		{"zero page", 0, nil, 0},
		{"negative page", -2, nil, 0},
		{"largest page", math.MaxInt, nil, 0},
		{"page whose offset overflows", math.MaxInt/10 + 1, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page []domain.Question
			require.NotPanics(t, func() { page = Paginate(all, tt.page, 10) })
			require.Len(t, page, tt.wantSize)
			if tt.wantSize > 0 {
				assert.Equal(t, tt.wantIDs[0], page[0].ID)
				assert.Equal(t, tt.wantIDs[1], page[len(page)-1].ID)
			}
		})
	}
}

func TestPaginateHugePageSize(t *testing.T) {
	all := questionsWithCategories(make([]int, 5)...)

	page := Paginate(all, 1, math.MaxInt)
	assert.Len(t, page, 5)
	assert.Empty(t, Paginate(all, 2, math.MaxInt))
}

func TestPaginateReconstructsCollection(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 30, 47} {
		all := questionsWithCategories(make([]int, total)...)
		for _, size := range []int{1, 3, 10} {
			var joined []domain.Question
			for page := 1; ; page++ {
				chunk := Paginate(all, page, size)
				if len(chunk) == 0 {
					break
				}
				assert.LessOrEqual(t, len(chunk), size)
				joined = append(joined, chunk...)
			}
			assert.Equal(t, len(all), len(joined), "total=%d size=%d", total, size)
			for i := range joined {
				assert.Equal(t, all[i].ID, joined[i].ID)
			}
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	all := []domain.Question{
		{ID: 1, Question: "What is the title of the 1990 fantasy film?"},
		{ID: 2, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"},
		{ID: 3, Question: "Which country won the first World Cup?"},
	}

	matches := Search(all, "TITLE")
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].ID)
	assert.Equal(t, 2, matches[1].ID)

	assert.Empty(t, Search(all, "zzzznomatch"))
}

func TestCurrentCategory(t *testing.T) {
	tests := []struct {
		name       string
		categories []int
		want       int
	}{
		{"tie goes to first seen", []int{1, 2, 1, 3, 2}, 1},
		{"later category reaching tie does not win", []int{2, 1, 1, 2}, 2},
		{"clear majority", []int{4, 5, 5, 5, 4}, 5},
		{"single", []int{6}, 6},
		{"first seen not smallest", []int{3, 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentCategory(questionsWithCategories(tt.categories...))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := CurrentCategory(nil)
	assert.False(t, ok)
}

func TestSelectorNeverReturnsPrevious(t *testing.T) {
	pool := questionsWithCategories(1, 2, 1, 1, 3, 1, 2)
	selector := NewSelector(rand.New(rand.NewPCG(1, 2)).IntN)
	previous := []int{1, 3}

	for i := 0; i < 200; i++ {
		q, err := selector.Next(pool, 1, previous)
		require.NoError(t, err)
		assert.Equal(t, 1, q.Category)
		assert.NotContains(t, previous, q.ID)
	}
}

func TestSelectorAnyCategory(t *testing.T) {
	pool := questionsWithCategories(1, 2, 3)
	selector := NewSelector(rand.New(rand.NewPCG(7, 7)).IntN)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		q, err := selector.Next(pool, AnyCategory, []int{2})
		require.NoError(t, err)
		assert.NotEqual(t, 2, q.ID)
		seen[q.ID] = true
	}
	assert.Equal(t, map[int]bool{1: true, 3: true}, seen)
}

func TestSelectorExhausted(t *testing.T) {
	pool := questionsWithCategories(1, 2, 1)
	selector := NewSelector(nil)

	_, err := selector.Next(pool, 1, []int{1, 3})
	assert.ErrorIs(t, err, ErrQuizExhausted)

	_, err = selector.Next(pool, 9, nil)
	assert.ErrorIs(t, err, ErrQuizExhausted)

	_, err = selector.Next(nil, AnyCategory, nil)
	assert.ErrorIs(t, err, ErrQuizExhausted)
}

func TestEligibleIgnoresUnknownPreviousIDs(t *testing.T) {
	pool := questionsWithCategories(1, 1)
	eligible := Eligible(pool, 1, []int{99, 2})
	require.Len(t, eligible, 1)
	assert.Equal(t, 1, eligible[0].ID)
}
