package handler

// ErrorResponse is the portal's error envelope, matching the inline
// gin.H error bodies the handlers emit. Middleware aborting a request
// uses it so rejections look the same as handler errors. Success
// bodies stay inline per handler since their data shapes differ.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Status:  "error",
		Message: message,
	}
}
