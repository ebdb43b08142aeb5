package handler

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts validator.Validate to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new request validator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate validates a bound request struct
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
