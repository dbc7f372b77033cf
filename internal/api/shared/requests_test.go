package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title string `json:"title" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid json", body: `{"title":"test"}`},
		{name: "trailing comma", body: `{"title":"test",}`, wantErr: true},
		{name: "empty body", body: "", wantErr: true},
		{name: "oversized body", body: `{"title":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()

			var dst sampleRequest
			err := DecodeJSON(rec, req, &dst)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidJSON)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "test", dst.Title)
		})
	}
}

type selfValidating struct{ called bool }

func (s *selfValidating) Validate() error {
	s.called = true
	return nil
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&sampleRequest{Title: "ok"}))
	assert.Error(t, ValidateRequest(&sampleRequest{}))

	v := &selfValidating{}
	assert.NoError(t, ValidateRequest(v))
	assert.True(t, v.called)
}
