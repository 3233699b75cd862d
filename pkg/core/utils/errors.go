package utils

import (
	"fmt"
	"net/http"
)

// ApiError classifies a pipeline failure for the transport layer. StatusCode
// picks the HTTP class, ErrorCode is a stable machine-readable tag.
type ApiError struct {
	StatusCode int
	Message    string
	ErrorCode  string
	Err        error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

// NewApiError creates an error with an explicit status and code.
func NewApiError(message string, statusCode int, errorCode string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  errorCode,
	}
}

// CreateConfigurationError marks a missing external-service configuration.
// Raised before any network call is attempted, so a bad deployment never
// masquerades as "part not found" or a generic upstream failure.
func CreateConfigurationError(message string) *ApiError {
	return NewApiError(message, http.StatusUnprocessableEntity, "CONFIG_MISSING")
}

// CreateUpstreamError marks a failed call to the record store or the LLM.
// Nothing in the pipeline retries; the caller sees a server-fault response.
func CreateUpstreamError(message string, err error) *ApiError {
	return &ApiError{
		StatusCode: http.StatusBadGateway,
		Message:    message,
		ErrorCode:  "UPSTREAM_ERROR",
		Err:        err,
	}
}

// CreateBadRequestError marks a malformed inbound request.
func CreateBadRequestError(message string) *ApiError {
	return NewApiError(message, http.StatusBadRequest, "BAD_REQUEST")
}
