package models

import (
	"encoding/json"
	"strings"
)

// Error codes shared by all services
const (
	ErrorCodeBadRequest          = "BAD_REQUEST"
	ErrorCodeIncorrectRequest    = "INCORRECT_REQUEST"
	ErrorCodeInsufficientFunds   = "INSUFFICIENT_FUNDS"
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// NoMessage is used when a downstream error body is empty or cannot be parsed
const NoMessage = "No message."

// ErrorResponse is the error body exchanged between services
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// NewErrorResponse creates an error response with a single detail
func NewErrorResponse(message string, detail string) ErrorResponse {
	return ErrorResponse{
		Message: message,
		Details: []string{detail},
	}
}

// EmptyErrorResponse is the placeholder for missing downstream error bodies
func EmptyErrorResponse() ErrorResponse {
	return ErrorResponse{
		Message: NoMessage,
		Details: []string{},
	}
}

// ParseErrorResponse decodes an error body. ok is false for empty or malformed bodies.
func ParseErrorResponse(body []byte) (ErrorResponse, bool) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return ErrorResponse{}, false
	}

	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ErrorResponse{}, false
	}

	if resp.Message == "" && len(resp.Details) == 0 {
		return ErrorResponse{}, false
	}

	if resp.Details == nil {
		resp.Details = []string{}
	}

	return resp, true
}

// Detail returns the first detail or the message when there are none
func (e ErrorResponse) Detail() string {
	if len(e.Details) > 0 {
		return e.Details[0]
	}
	return e.Message
}

func (e ErrorResponse) Error() string {
	return e.Message + ": " + strings.Join(e.Details, "; ")
}
