package handlers

import (
	"fmt"
	"testing"

	"summaries-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "vault item", ID: "123"},
			expectedStatus: 404,
			expectedInMsg:  "vault item not found",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "topic", Message: "topic is required"},
			expectedStatus: 400,
			expectedInMsg:  "topic is required",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error"},
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 400 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 400, Message: "bad request"},
			expectedStatus: 400,
			expectedInMsg:  "External service request error",
		},
		{
			name:           "ExternalAPIError without status returns 503",
			input:          &errors.ExternalAPIError{Message: "connection refused"},
			expectedStatus: 503,
			expectedInMsg:  "External service error",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "vault item", ID: "1"}),
			expectedStatus: 404,
			expectedInMsg:  "vault item not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
