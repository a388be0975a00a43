package models

// ErrorBody is the JSON error envelope used across the API.
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse builds an error body for a failed request.
func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Message: message}
}
