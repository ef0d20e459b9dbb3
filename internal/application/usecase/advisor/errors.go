package advisor

import (
	"context"
	"errors"
	"strings"
	"time"

	domainerror "github.com/fintracker/insights/internal/domain/error"
)

// Error code constants for AI processing failures.
const (
	ErrCodeAIServiceUnavailable = "AI_SERVICE_UNAVAILABLE"
	ErrCodeAIRateLimited        = "AI_RATE_LIMITED"
	ErrCodeAIAuthError          = "AI_AUTH_ERROR"
	ErrCodeAITimeout            = "AI_TIMEOUT"
	ErrCodeAIParseError         = "AI_PARSE_ERROR"
	ErrCodeAIUnknownError       = "AI_UNKNOWN_ERROR"
)

// errorMessages maps each code to its operator-facing message.
var errorMessages = map[string]string{
	ErrCodeAIServiceUnavailable: "The AI service is temporarily unreachable.",
	ErrCodeAIRateLimited:        "The AI service rate limit was hit.",
	ErrCodeAIAuthError:          "The AI credential was rejected.",
	ErrCodeAITimeout:            "The AI call exceeded its deadline.",
	ErrCodeAIParseError:         "The AI response could not be parsed.",
	ErrCodeAIUnknownError:       "The AI call failed for an unknown reason.",
}

// ProcessingError describes a classified AI delegate failure.
type ProcessingError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func newProcessingError(code string, retryable bool) *ProcessingError {
	return &ProcessingError{
		Code:      code,
		Message:   errorMessages[code],
		Retryable: retryable,
		Timestamp: time.Now(),
	}
}

// classifyError converts a delegate error into a ProcessingError with an
// error code and retryable flag, used for structured fallback logging.
//
// The delegate's own coded errors are authoritative; message sniffing is
// only for transport failures wrapped by the underlying SDK, whose errors
// carry no structure of their own.
func classifyError(err error) *ProcessingError {
	var svcErr *domainerror.ExternalServiceError
	if errors.As(err, &svcErr) {
		switch svcErr.Code {
		case domainerror.ErrCodeAIEmptyResponse:
			return newProcessingError(ErrCodeAIServiceUnavailable, true)
		case domainerror.ErrCodeAIMalformedResponse, domainerror.ErrCodeAIUnknownCategory:
			return newProcessingError(ErrCodeAIParseError, true)
		case domainerror.ErrCodeAICallFailed:
			// Transport failure; classify from the wrapped error below.
		}
	}

	// Timeout/cancellation (context errors)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newProcessingError(ErrCodeAITimeout, true)
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case containsAny(errStr, "rate limit", "quota", "429", "resource exhausted"):
		return newProcessingError(ErrCodeAIRateLimited, true)
	case containsAny(errStr, "401", "403", "invalid api key", "unauthorized", "authentication"):
		return newProcessingError(ErrCodeAIAuthError, false)
	case containsAny(errStr, "connection", "network", "dial", "timeout", "unavailable", "503"):
		return newProcessingError(ErrCodeAIServiceUnavailable, true)
	case containsAny(errStr, "parse", "json", "unmarshal", "decode", "malformed"):
		return newProcessingError(ErrCodeAIParseError, true)
	}

	return newProcessingError(ErrCodeAIUnknownError, true)
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
