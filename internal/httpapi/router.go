package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"quiz-builder/internal/quiz"
)

func NewRouter(service *quiz.Service, log *zap.Logger) http.Handler {
	api := NewAPI(service, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/quizzes", api.HandleCreateQuiz)
	mux.HandleFunc("/api/quizzes/{id}", api.HandleGetQuiz)

	return requestLogger(api.log, mux)
}
