package handler

// oopsErr is returned in place of internal error details.
const oopsErr = "Something went wrong while tracking your transactions. Please try again later."

// Response is the envelope every tracker endpoint answers with.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
