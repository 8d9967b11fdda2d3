package httpapi

import (
	"go.uber.org/zap"

	"quiz-builder/internal/quiz"
)

type API struct {
	service *quiz.Service
	log     *zap.Logger
}

func NewAPI(service *quiz.Service, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		service: service,
		log:     log,
	}
}
