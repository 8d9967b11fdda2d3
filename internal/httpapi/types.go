package httpapi

// apiResponse is the envelope every endpoint answers with. Error is null on
// success; Data is null on failure and on a lookup that found nothing.
type apiResponse struct {
	Success bool    `json:"success"`
	Error   *string `json:"error"`
	Data    any     `json:"data"`
}

const msgInternalError = "internal server error"
