package quiz

import "context"

// Service sits between the HTTP layer and the repository. It owns payload
// validation so no invalid payload ever reaches the store.
type Service struct {
	quizzes Repository
}

func NewService(quizzes Repository) *Service {
	return &Service{quizzes: quizzes}
}

// CreateQuiz validates the payload and persists it. A *ValidationError means
// the payload was rejected before any write was attempted; any other error is
// a store failure after which nothing was committed.
func (s *Service) CreateQuiz(ctx context.Context, payload *QuizPayload) (*Quiz, error) {
	if err := ValidatePayload(payload); err != nil {
		return nil, err
	}
	return s.quizzes.CreateQuiz(ctx, payload)
}

// GetQuiz loads a quiz and its full subtree. Returns ErrQuizNotFound when the
// identifier matches nothing.
func (s *Service) GetQuiz(ctx context.Context, quizID int64) (*Quiz, error) {
	return s.quizzes.GetQuiz(ctx, quizID)
}
