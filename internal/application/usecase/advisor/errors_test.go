package advisor

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/fintracker/insights/internal/domain/error"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		expectRetry  bool
	}{
		// Timeout/cancellation errors
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
		// Rate limiting errors
		{
			name:         "rate limit error",
			err:          errors.New("rate limit exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "quota error",
			err:          errors.New("quota exceeded"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "429 status code error",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name:         "resource exhausted error",
			err:          errors.New("resource exhausted"),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		// Authentication errors
		{
			name:         "401 unauthorized",
			err:          errors.New("401 unauthorized"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "invalid api key",
			err:          errors.New("invalid api key"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		{
			name:         "authentication error",
			err:          errors.New("authentication failed"),
			expectedCode: ErrCodeAIAuthError,
			expectRetry:  false,
		},
		// Network/connection errors
		{
			name:         "connection refused",
			err:          errors.New("connection refused"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "dial error",
			err:          errors.New("dial tcp: connection refused"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name:         "503 status code error",
			err:          errors.New("HTTP 503: service unavailable"),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		// Parsing errors
		{
			name:         "json parse error",
			err:          errors.New("failed to parse JSON response"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "unmarshal error",
			err:          errors.New("cannot unmarshal string into Go value"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name:         "malformed response",
			err:          errors.New("malformed model response"),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		// Unknown errors
		{
			name:         "unknown error",
			err:          errors.New("something odd happened"),
			expectedCode: ErrCodeAIUnknownError,
			expectRetry:  true,
		},
		// Coded delegate errors classify by code, not by message text
		{
			name: "coded malformed response without parse keywords",
			err: domainerror.NewExternalServiceError(
				domainerror.ErrCodeAIMalformedResponse, "model returned prose", nil),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name: "coded unknown category",
			err: domainerror.NewExternalServiceError(
				domainerror.ErrCodeAIUnknownCategory, "category outside the enumeration", nil),
			expectedCode: ErrCodeAIParseError,
			expectRetry:  true,
		},
		{
			name: "coded empty response",
			err: domainerror.NewExternalServiceError(
				domainerror.ErrCodeAIEmptyResponse, "no candidates returned", nil),
			expectedCode: ErrCodeAIServiceUnavailable,
			expectRetry:  true,
		},
		{
			name: "coded call failure wrapping a rate limit",
			err: domainerror.NewExternalServiceError(
				domainerror.ErrCodeAICallFailed, "generate content call failed",
				errors.New("googleapi: Error 429: quota exceeded")),
			expectedCode: ErrCodeAIRateLimited,
			expectRetry:  true,
		},
		{
			name: "coded call failure wrapping a deadline",
			err: domainerror.NewExternalServiceError(
				domainerror.ErrCodeAICallFailed, "generate content call failed",
				context.DeadlineExceeded),
			expectedCode: ErrCodeAITimeout,
			expectRetry:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyError(tt.err)
			if classified.Code != tt.expectedCode {
				t.Errorf("Code = %q, want %q", classified.Code, tt.expectedCode)
			}
			if classified.Retryable != tt.expectRetry {
				t.Errorf("Retryable = %v, want %v", classified.Retryable, tt.expectRetry)
			}
			if classified.Message != errorMessages[tt.expectedCode] {
				t.Errorf("Message = %q, want %q", classified.Message, errorMessages[tt.expectedCode])
			}
			if classified.Timestamp.IsZero() {
				t.Error("Timestamp was not set")
			}
		})
	}
}
