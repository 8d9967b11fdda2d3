package quiz

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrQuizNotFound is returned when a quiz identifier matches no stored quiz.
	// Absence is a distinct outcome, not a store failure.
	ErrQuizNotFound = errors.New("quiz not found")

	// ErrUnorderedRows is returned when the read query violates its ordering
	// postcondition (rows for one question must be contiguous).
	ErrUnorderedRows = errors.New("quiz rows out of order")
)

// Quiz is a stored quiz with its full question/option tree. Field names on
// the wire match the public API contract, including the camelCase timestamps.
type Quiz struct {
	QuizID      int64      `json:"quiz_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt time.Time  `json:"publishedAt"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	QuestionID int64    `json:"question_id"`
	Text       string   `json:"text"`
	Mandatory  bool     `json:"mandatory"`
	Options    []Option `json:"options"`
}

type Option struct {
	OptionID  int64  `json:"option_id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Repository persists quizzes. CreateQuiz must insert the quiz and its whole
// subtree atomically: on any failure no rows are committed.
type Repository interface {
	CreateQuiz(ctx context.Context, payload *QuizPayload) (*Quiz, error)
	GetQuiz(ctx context.Context, quizID int64) (*Quiz, error)
}
