// Package response defines the JSON envelope every endpoint answers with:
// a success flag plus either the payload or a coded error object.
package response

import "github.com/gin-gonic/gin"

// Body is the envelope wrapping every response.
type Body struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries a machine-readable code alongside the user-facing
// message. Details holds field-level validation errors when present.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success writes data wrapped in the standard envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Body{Success: true, Data: data})
}

// Error writes a failure envelope with a machine-readable code.
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Body{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}

// ErrorWithDetails is Error with per-field detail attached, used for
// validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Body{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message, Details: details},
	})
}
