package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeRenderFailed, http.StatusBadGateway},
		{ErrCodeStoreFailed, http.StatusInternalServerError},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, GetHTTPStatus(tt.code), "code %s", tt.code)
	}
}

func TestResponseEnvelope(t *testing.T) {
	t.Run("success carries data", func(t *testing.T) {
		resp := NewSuccessResponse(map[string]string{"id": "1"})
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		assert.Nil(t, resp.Error)
	})

	t.Run("error carries code and request ID", func(t *testing.T) {
		resp := NewErrorResponse(ErrCodeNotFound, "Offer not found", "req-42")
		assert.False(t, resp.Success)
		assert.Nil(t, resp.Data)
		assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, "req-42", resp.Error.RequestID)
	})
}
