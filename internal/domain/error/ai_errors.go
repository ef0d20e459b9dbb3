package error

import "errors"

// AI delegate domain errors.
var (
	// ErrAIMissingCredential is returned when the delegate is constructed without an API key.
	ErrAIMissingCredential = errors.New("ai credential is empty")

	// ErrAIEmptyResponse is returned when the model returns no candidates or no text.
	ErrAIEmptyResponse = errors.New("empty response from model")

	// ErrAIMalformedResponse is returned when the model output cannot be parsed
	// into the expected structure.
	ErrAIMalformedResponse = errors.New("malformed model response")

	// ErrAIUnknownCategory is returned when the model names a category outside
	// the closed enumeration.
	ErrAIUnknownCategory = errors.New("model returned unknown category")
)

// AIErrorCode defines error codes for AI delegate errors.
// Format: AIS-XXYYYY where XX is category and YYYY is specific error.
type AIErrorCode string

const (
	// Configuration errors (01XXXX)
	ErrCodeAIMissingCredential AIErrorCode = "AIS-010001"

	// External service errors (02XXXX)
	ErrCodeAICallFailed        AIErrorCode = "AIS-020001"
	ErrCodeAIEmptyResponse     AIErrorCode = "AIS-020002"
	ErrCodeAIMalformedResponse AIErrorCode = "AIS-020003"
	ErrCodeAIUnknownCategory   AIErrorCode = "AIS-020004"
)

// ExternalServiceError represents a failure of the external generative-text
// service or of parsing its output. The orchestration layer catches this
// error and demotes it to the deterministic fallback path; it must never
// reach the end caller.
type ExternalServiceError struct {
	Code    AIErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// NewExternalServiceError creates a new ExternalServiceError.
func NewExternalServiceError(code AIErrorCode, message string, err error) *ExternalServiceError {
	return &ExternalServiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ConfigurationError represents an invalid AI delegate configuration.
// Constructors reject bad configuration loudly so the orchestrator chooses
// fallback mode deliberately rather than by accident.
type ConfigurationError struct {
	Code    AIErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(code AIErrorCode, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
