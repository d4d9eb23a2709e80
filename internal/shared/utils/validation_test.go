package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaguemotd/internal/shared/errors"
)

type sampleRequest struct {
	Language string  `json:"language" validate:"required"`
	Message  string  `json:"message" validate:"required,singleline"`
	URL      *string `json:"url" validate:"omitempty,singleline"`
}

func strPtr(s string) *string { return &s }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{name: "valid", req: sampleRequest{Language: "de", Message: "Hallo"}},
		{name: "valid with url", req: sampleRequest{Language: "de", Message: "Hallo", URL: strPtr("http://example.com")}},
		{name: "missing language", req: sampleRequest{Message: "Hallo"}, wantErr: "language is required"},
		{name: "missing message", req: sampleRequest{Language: "de"}, wantErr: "message is required"},
		{name: "multiline message", req: sampleRequest{Language: "de", Message: "a\nb"}, wantErr: "message must be a single line"},
		{name: "empty url", req: sampleRequest{Language: "de", Message: "Hallo", URL: strPtr("")}},
		{name: "carriage return kept", req: sampleRequest{Language: "de", Message: "a\rb", URL: strPtr("http://x\r")}},
		{name: "multiline url", req: sampleRequest{Language: "de", Message: "a", URL: strPtr("http://x\ny")}, wantErr: "url must be a single line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, errors.GetAppError(err).Details, tt.wantErr)
		})
	}
}
