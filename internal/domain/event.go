package domain

import (
	"context"
	"time"
)

// Catalog event types
const (
	EventQuestionCreated = "question.created"
	EventQuestionDeleted = "question.deleted"
)

// Event describes a change to the question catalog
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	QuestionID int       `json:"question_id"`
	Category   int       `json:"category,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers catalog events to interested listeners
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
