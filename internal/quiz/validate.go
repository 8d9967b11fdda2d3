package quiz

// ValidationError carries the client-facing reason a payload was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Historical reason strings, typo included. Clients match on these.
const (
	reasonUndefinedBody   = "undefined request body"
	reasonNoTitle         = "Quiz must have a title"
	reasonNoDescription   = "Quiz must have a description"
	reasonNoPublished     = "Quiz must have publised set as true or false"
	reasonNoQuestions     = "Quiz must have at least one question"
	reasonNoQuestionText  = "Questions must have a question statement"
	reasonNoOptions       = "Questions must have at least one option"
	reasonNoOptionText    = "Options must have a text"
	reasonNoCorrectOption = "Question must have at least one correct option"
)

// ValidatePayload checks structural well-formedness of a quiz payload. Checks
// run in a fixed order and stop at the first violation: body, title,
// description, published, questions, then per question its text, options,
// option texts, and finally the correct-option requirement. An explicit
// published=false is valid; only absence fails. Pure function, no side effects.
func ValidatePayload(payload *QuizPayload) error {
	if payload == nil {
		return &ValidationError{Reason: reasonUndefinedBody}
	}
	if payload.Title == "" {
		return &ValidationError{Reason: reasonNoTitle}
	}
	if payload.Description == "" {
		return &ValidationError{Reason: reasonNoDescription}
	}
	if payload.Published == nil {
		return &ValidationError{Reason: reasonNoPublished}
	}
	if len(payload.Questions) < 1 {
		return &ValidationError{Reason: reasonNoQuestions}
	}

	for _, question := range payload.Questions {
		if question.Text == "" {
			return &ValidationError{Reason: reasonNoQuestionText}
		}
		if len(question.Options) < 1 {
			return &ValidationError{Reason: reasonNoOptions}
		}

		hasCorrect := false
		for _, option := range question.Options {
			if option.Text == "" {
				return &ValidationError{Reason: reasonNoOptionText}
			}
			if option.IsCorrect {
				hasCorrect = true
			}
		}
		if !hasCorrect {
			return &ValidationError{Reason: reasonNoCorrectOption}
		}
	}

	return nil
}
