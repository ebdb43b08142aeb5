package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// TriviaService implements the question catalog and quiz operations
type TriviaService struct {
	repo     domain.QuestionRepository
	events   domain.EventPublisher
	selector *Selector
	pageSize int
	logger   *zap.Logger
}

// Options configures a TriviaService
type Options struct {
	PageSize int
	Selector *Selector
	Events   domain.EventPublisher
	Logger   *zap.Logger
}

// NewTriviaService creates a new trivia service
func NewTriviaService(repo domain.QuestionRepository, opts Options) *TriviaService {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Selector == nil {
		opts.Selector = NewSelector(nil)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &TriviaService{
		repo:     repo,
		events:   opts.Events,
		selector: opts.Selector,
		pageSize: opts.PageSize,
		logger:   opts.Logger,
	}
}

// QuestionPage is one page of the question list
type QuestionPage struct {
	Questions      []QuestionView
	TotalQuestions int
	Categories     map[int]string
}

// QuestionSet is a filtered set of questions with its representative category.
// CurrentCategory is nil when the category id does not resolve.
type QuestionSet struct {
	Questions       []QuestionView
	TotalQuestions  int
	CurrentCategory *string
}

// NewQuestion holds the fields of a submitted question
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// AnswerResult reports whether a guess matches a question's answer
type AnswerResult struct {
	Correct bool
	Answer  string
}

// Categories returns every category keyed by id
func (s *TriviaService) Categories(ctx context.Context) (map[int]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	return FormatCategories(categories), nil
}

// QuestionsPage returns the requested 1-indexed page of questions
func (s *TriviaService) QuestionsPage(ctx context.Context, page int) (*QuestionPage, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	selected := Paginate(questions, page, s.pageSize)
	if len(selected) == 0 {
		return nil, ErrPageNotFound
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &QuestionPage{
		Questions:      FormatQuestions(selected),
		TotalQuestions: len(questions),
		Categories:     FormatCategories(categories),
	}, nil
}

// CreateQuestion stores a new question
func (s *TriviaService) CreateQuestion(ctx context.Context, in NewQuestion) (*domain.Question, error) {
	question := &domain.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Category:   in.Category,
		Difficulty: in.Difficulty,
	}

	if err := s.repo.CreateQuestion(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.publish(ctx, domain.EventQuestionCreated, *question)
	return question, nil
}

// DeleteQuestion removes a question. Deleting an absent id returns
// domain.ErrQuestionNotFound.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, domain.EventQuestionDeleted, *deleted)
	return nil
}

// Search finds questions containing term, case-insensitively
func (s *TriviaService) Search(ctx context.Context, term string) (*QuestionSet, error) {
	questions, err := s.repo.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	matches := Search(questions, term)
	if len(matches) == 0 {
		return nil, ErrNoMatches
	}

	categoryID, _ := CurrentCategory(matches)
	current, err := s.categoryType(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return &QuestionSet{
		Questions:       FormatQuestions(matches),
		TotalQuestions:  len(matches),
		CurrentCategory: current,
	}, nil
}

// QuestionsByCategory returns every question of a category
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) (*QuestionSet, error) {
	questions, err := s.repo.FindQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoMatches
	}

	current, err := s.categoryType(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return &QuestionSet{
		Questions:       FormatQuestions(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: current,
	}, nil
}

// NextQuizQuestion picks a random question of categoryID that is not in
// previous. AnyCategory draws from all questions.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*QuestionView, error) {
	var (
		pool []domain.Question
		err  error
	)
	if categoryID == AnyCategory {
		pool, err = s.repo.ListQuestions(ctx)
	} else {
		pool, err = s.repo.FindQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz pool: %w", err)
	}

	question, err := s.selector.Next(pool, categoryID, previous)
	if err != nil {
		return nil, err
	}

	view := FormatQuestion(question)
	return &view, nil
}

// CheckAnswer compares a guess with the stored answer of a question
func (s *TriviaService) CheckAnswer(ctx context.Context, id int, guess string) (*AnswerResult, error) {
	question, err := s.repo.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AnswerResult{
		Correct: validation.IsSimilarAnswer(guess, question.Answer),
		Answer:  question.Answer,
	}, nil
}

// categoryType resolves a category id to its label. Unknown ids yield nil.
func (s *TriviaService) categoryType(ctx context.Context, id int) (*string, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category.Type, nil
}

func (s *TriviaService) publish(ctx context.Context, eventType string, q domain.Question) {
	if s.events == nil {
		return
	}

	event := domain.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		QuestionID: q.ID,
		Category:   q.Category,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish catalog event",
			zap.String("type", eventType),
			zap.Int("question_id", q.ID),
			zap.Error(err),
		)
	}
}
