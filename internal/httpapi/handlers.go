package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"quiz-builder/internal/quiz"
)

func (a *API) HandleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.service == nil {
		writeError(w, http.StatusInternalServerError, "quiz service unavailable")
		return
	}

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload, err := quiz.ParsePayload(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := a.service.CreateQuiz(r.Context(), payload)
	if err != nil {
		var validationErr *quiz.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Reason)
			return
		}
		// Store failures roll back the whole write; the caller only ever
		// learns that the request failed.
		a.log.Error("create quiz failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeData(w, created)
}

func (a *API) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if a.service == nil {
		writeError(w, http.StatusInternalServerError, "quiz service unavailable")
		return
	}

	quizID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "quiz id must be an integer")
		return
	}

	item, err := a.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, quiz.ErrQuizNotFound) {
			// Absence is a successful lookup with no result, not a failure.
			writeData(w, nil)
			return
		}
		a.log.Error("get quiz failed", zap.Int64("quiz_id", quizID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	writeData(w, item)
}
