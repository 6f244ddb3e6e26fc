package http

import (
	"fmt"
	"net/http"
)

// Error codes carried in AppError.Code and ValidationError.Code. Validator
// failures use "ERR_" plus the upper-cased tag instead, e.g. ERR_ONEOF.
const (
	CodeBind     = "ERR_BIND"
	CodeSession  = "ERR_SESSION_ID"
	CodeTime     = "ERR_TIME_FORMAT"
	CodeInternal = "ERR_INTERNAL"
	CodeUnknown  = "ERR_UNKNOWN"
)

// AppError is an error that knows its envelope status. Err is logged but
// never serialized.
type AppError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Field   string                 `json:"field,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
	Status  int                    `json:"-"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error.
func NewAppError(code, field, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Status:  status,
	}
}

// WithParam sets a single error param.
func (e *AppError) WithParam(key string, value interface{}) *AppError {
	if e.Params == nil {
		e.Params = make(map[string]interface{})
	}
	e.Params[key] = value
	return e
}

// WithError wraps an underlying error.
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// InvalidSessionError rejects a session id carried in header.
func InvalidSessionError(header string, maxLen int) *AppError {
	return NewAppError(CodeSession, header, fmt.Sprintf("session id longer than %d bytes", maxLen), http.StatusBadRequest).
		WithParam("max", maxLen)
}

// InvalidTimeError rejects a time query value that no accepted layout parses.
func InvalidTimeError(field, value string) *AppError {
	return NewAppError(CodeTime, field, fmt.Sprintf("%s %q is not a valid time", field, value), http.StatusBadRequest).
		WithParam("formats", []string{"RFC3339", "2006-01-02 15:04:05", "unix seconds"})
}

// InternalError creates a 500 error. Its message is what clients see.
func InternalError(message string) *AppError {
	return NewAppError(CodeInternal, "", message, http.StatusInternalServerError)
}
