package quiz

import "encoding/json"

// QuizPayload is the client-submitted structure for quiz creation. Published
// is a pointer so an explicit false is distinguishable from an absent field.
type QuizPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Published   *bool             `json:"published"`
	Questions   []QuestionPayload `json:"questions"`
}

type QuestionPayload struct {
	Text      string          `json:"text"`
	Mandatory bool            `json:"mandatory"`
	Options   []OptionPayload `json:"options"`
}

type OptionPayload struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// ParsePayload decodes a request body into a QuizPayload. An empty body, a
// JSON null, or an object with no fields all decode to nil so the validator
// reports them as an undefined request body. Malformed JSON is returned as-is
// for the caller to reject.
func ParsePayload(body []byte) (*QuizPayload, error) {
	if len(body) == 0 {
		return nil, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	var payload QuizPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
