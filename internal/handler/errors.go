package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Status    string `json:"status"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "The requested resource was not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "The request cannot be processed due to an unprocessable entity",
	http.StatusInternalServerError: "Internal server error",
}

func errorMessage(code int) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}

// NewErrorHandler renders every error as an ErrorResponse. Server faults are
// logged and never expose their cause.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
		}

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, ErrorResponse{
				Status:    "error",
				ErrorCode: strconv.Itoa(code),
				Message:   errorMessage(code),
			})
		}
		if werr != nil {
			logger.Error("failed to write error response", zap.Error(werr))
		}
	}
}

// serviceError maps a service outcome to an HTTP error
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, domain.ErrQuestionNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return echo.NewHTTPError(http.StatusNotFound).SetInternal(err)
	case errors.Is(err, service.ErrQuizExhausted):
		return echo.NewHTTPError(http.StatusUnprocessableEntity).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}

func badRequest(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest).SetInternal(err)
}
