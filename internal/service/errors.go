package service

import (
	"errors"
	"fmt"
)

// Common service errors
var (
	ErrNotFound      = errors.New("not found")
	ErrNoCategories  = fmt.Errorf("no categories: %w", ErrNotFound)
	ErrPageNotFound  = fmt.Errorf("page has no questions: %w", ErrNotFound)
	ErrNoMatches     = fmt.Errorf("no matching questions: %w", ErrNotFound)
	ErrQuizExhausted = errors.New("no eligible quiz question left")
)
