package dto

// Response is the envelope of every API response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful response
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail builds an error response
func Fail(code int, message string) Response {
	return Response{Success: false, Code: code, Message: message}
}
