package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaService defines the catalog and quiz operations served over HTTP
type TriviaService interface {
	Categories(ctx context.Context) (map[int]string, error)
	QuestionsPage(ctx context.Context, page int) (*service.QuestionPage, error)
	CreateQuestion(ctx context.Context, in service.NewQuestion) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id int) error
	Search(ctx context.Context, term string) (*service.QuestionSet, error)
	QuestionsByCategory(ctx context.Context, categoryID int) (*service.QuestionSet, error)
	NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*service.QuestionView, error)
	CheckAnswer(ctx context.Context, id int, guess string) (*service.AnswerResult, error)
}

// TriviaHandler handles trivia HTTP requests
type TriviaHandler struct {
	trivia TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(trivia TriviaService) *TriviaHandler {
	return &TriviaHandler{trivia: trivia}
}

// Register registers the trivia routes
func (h *TriviaHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.GetCategories)
	e.GET("/categories/:category_id/questions", h.GetCategoryQuestions)
	e.GET("/questions", h.GetQuestions)
	e.POST("/questions", h.CreateQuestion)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	e.POST("/questions/:id/answer", h.CheckAnswer)
	e.POST("/quiz", h.PlayQuiz)
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   int    `json:"category" validate:"required,min=1"`
	Difficulty int    `json:"difficulty" validate:"required,min=1"`
}

// SearchRequest represents a question search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
}

// QuizRequest represents a request for the next quiz question
type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// QuizCategory identifies the quiz category. An ID of 0 means all categories.
type QuizCategory struct {
	ID   *FlexibleInt `json:"id" validate:"required"`
	Type string       `json:"type"`
}

// AnswerRequest represents a guess at a question's answer
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// FlexibleInt decodes from a JSON number or a numeric string
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", s, err)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}

// QuestionsResponse is a page of the question list
type QuestionsResponse struct {
	Questions       []service.QuestionView `json:"questions"`
	TotalQuestions  int                    `json:"totalQuestions"`
	Categories      map[int]string         `json:"categories"`
	CurrentCategory *string                `json:"currentCategory"`
}

// QuestionSetResponse is a search or category result
type QuestionSetResponse struct {
	Questions       []service.QuestionView `json:"questions"`
	TotalQuestions  int                    `json:"totalQuestions"`
	CurrentCategory *string                `json:"currentCategory"`
}

// GetCategories returns every category keyed by id
func (h *TriviaHandler) GetCategories(c echo.Context) error {
	categories, err := h.trivia.Categories(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"categories": categories,
	})
}

// GetQuestions returns one page of questions. A missing or malformed page
// parameter selects the first page.
func (h *TriviaHandler) GetQuestions(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 1
	}

	result, err := h.trivia.QuestionsPage(c.Request().Context(), page)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
		Categories:     result.Categories,
	})
}

// DeleteQuestion deletes a question by id
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(err)
	}

	if err := h.trivia.DeleteQuestion(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateQuestion stores a submitted question
func (h *TriviaHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.trivia.CreateQuestion(c.Request().Context(), service.NewQuestion{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SearchQuestions finds questions containing the search term
func (h *TriviaHandler) SearchQuestions(c echo.Context) error {
	var req SearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.trivia.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, QuestionSetResponse{
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// GetCategoryQuestions returns every question of a category
func (h *TriviaHandler) GetCategoryQuestions(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		return badRequest(err)
	}

	result, err := h.trivia.QuestionsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, QuestionSetResponse{
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// PlayQuiz returns a random question that has not been played yet
func (h *TriviaHandler) PlayQuiz(c echo.Context) error {
	var req QuizRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	question, err := h.trivia.NextQuizQuestion(
		c.Request().Context(),
		int(*req.QuizCategory.ID),
		req.PreviousQuestions,
	)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"question": question,
	})
}

// CheckAnswer reports whether a guess matches the question's answer
func (h *TriviaHandler) CheckAnswer(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest(err)
	}

	var req AnswerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.trivia.CheckAnswer(c.Request().Context(), id, req.Answer)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"correct": result.Correct,
		"answer":  result.Answer,
	})
}

// bindAndValidate decodes the JSON body into req and validates it
func bindAndValidate(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return badRequest(err)
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err)
	}
	return nil
}
