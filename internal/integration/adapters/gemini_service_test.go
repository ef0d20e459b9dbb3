package adapters

import (
	"errors"
	"testing"
	"time"

	"github.com/fintracker/insights/internal/domain/entity"
	domainerror "github.com/fintracker/insights/internal/domain/error"
)

func TestNewGeminiServiceRequiresAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
	}{
		{"empty key", ""},
		{"blank key", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeminiService(tt.apiKey, "", 0)
			if err == nil {
				t.Fatal("expected an error for a missing credential")
			}

			var cfgErr *domainerror.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error type = %T, want *ConfigurationError", err)
			}
			if cfgErr.Code != domainerror.ErrCodeAIMissingCredential {
				t.Errorf("Code = %q, want %q", cfgErr.Code, domainerror.ErrCodeAIMissingCredential)
			}
			if !errors.Is(err, domainerror.ErrAIMissingCredential) {
				t.Error("error does not wrap ErrAIMissingCredential")
			}
		})
	}
}

func TestNewGeminiServiceDefaults(t *testing.T) {
	service, err := NewGeminiService("test-key", "", 30*time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if service.modelName != defaultModelName {
		t.Errorf("modelName = %q, want %q", service.modelName, defaultModelName)
	}
	if !service.IsAvailable() {
		t.Error("IsAvailable() = false with a credential")
	}
}

func TestParseModelJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "plain json",
			input: `{"merchantName":"Amazon","category":"shopping","icon":"🛍️"}`,
		},
		{
			name:  "json fenced block",
			input: "```json\n{\"merchantName\":\"Amazon\",\"category\":\"shopping\",\"icon\":\"🛍️\"}\n```",
		},
		{
			name:  "plain fenced block",
			input: "```\n{\"merchantName\":\"Amazon\",\"category\":\"shopping\",\"icon\":\"🛍️\"}\n```",
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"merchantName\":\"Amazon\",\"category\":\"shopping\",\"icon\":\"🛍️\"}  \n",
		},
		{
			name:    "prose instead of json",
			input:   "The merchant appears to be Amazon.",
			wantErr: true,
		},
		{
			name:    "truncated json",
			input:   `{"merchantName":"Ama`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var wire merchantWire
			err := parseModelJSON(tt.input, &wire)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected a parse error")
				}
				var svcErr *domainerror.ExternalServiceError
				if !errors.As(err, &svcErr) {
					t.Fatalf("error type = %T, want *ExternalServiceError", err)
				}
				if svcErr.Code != domainerror.ErrCodeAIMalformedResponse {
					t.Errorf("Code = %q, want %q", svcErr.Code, domainerror.ErrCodeAIMalformedResponse)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if wire.MerchantName != "Amazon" {
				t.Errorf("MerchantName = %q, want Amazon", wire.MerchantName)
			}
		})
	}
}

func TestNormalizeImpact(t *testing.T) {
	tests := []struct {
		input    string
		expected entity.ActionImpact
	}{
		{"High", entity.ImpactHigh},
		{"high", entity.ImpactHigh},
		{" LOW ", entity.ImpactLow},
		{"Medium", entity.ImpactMedium},
		{"critical", entity.ImpactMedium},
		{"", entity.ImpactMedium},
	}

	for _, tt := range tests {
		if got := normalizeImpact(tt.input); got != tt.expected {
			t.Errorf("normalizeImpact(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeTimeframe(t *testing.T) {
	tests := []struct {
		input    string
		expected entity.ActionTimeframe
	}{
		{"Short-term", entity.TimeframeShortTerm},
		{"short term", entity.TimeframeShortTerm},
		{"Long-term", entity.TimeframeLongTerm},
		{"long", entity.TimeframeLongTerm},
		{"Medium-term", entity.TimeframeMediumTerm},
		{"whenever", entity.TimeframeMediumTerm},
	}

	for _, tt := range tests {
		if got := normalizeTimeframe(tt.input); got != tt.expected {
			t.Errorf("normalizeTimeframe(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
