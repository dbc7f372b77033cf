package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/mocks"
	"github.com/phrazzld/taskflow-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens() *mocks.MockTokenService {
	return &mocks.MockTokenService{
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			switch token {
			case "good":
				return &auth.Claims{OwnerID: "user-9", TokenType: "access"}, nil
			case "expired":
				return nil, auth.ErrExpiredToken
			case "broken":
				return nil, errors.New("keystore offline")
			default:
				return nil, auth.ErrInvalidToken
			}
		},
	}
}

func TestIdentityMiddleware_Resolve(t *testing.T) {
	tests := []struct {
		name           string
		allowAnonymous bool
		header         string
		wantStatus     int
		wantOwner      string
		wantError      string
	}{
		{
			name:           "valid token",
			allowAnonymous: true,
			header:         "Bearer good",
			wantStatus:     http.StatusOK,
			wantOwner:      "user-9",
		},
		{
			name:           "lowercase scheme",
			allowAnonymous: false,
			header:         "bearer good",
			wantStatus:     http.StatusOK,
			wantOwner:      "user-9",
		},
		{
			name:           "anonymous allowed",
			allowAnonymous: true,
			wantStatus:     http.StatusOK,
			wantOwner:      "demo-user",
		},
		{
			name:           "anonymous rejected",
			allowAnonymous: false,
			wantStatus:     http.StatusUnauthorized,
			wantError:      "Unauthorized",
		},
		{
			name:           "invalid token rejected even when anonymous allowed",
			allowAnonymous: true,
			header:         "Bearer forged",
			wantStatus:     http.StatusUnauthorized,
			wantError:      "Invalid token",
		},
		{
			name:           "expired token",
			allowAnonymous: true,
			header:         "Bearer expired",
			wantStatus:     http.StatusUnauthorized,
			wantError:      "Token expired",
		},
		{
			name:           "wrong scheme",
			allowAnonymous: true,
			header:         "Basic dXNlcjpwYXNz",
			wantStatus:     http.StatusUnauthorized,
			wantError:      "Invalid authorization format",
		},
		{
			name:           "missing token after scheme",
			allowAnonymous: true,
			header:         "Bearer ",
			wantStatus:     http.StatusUnauthorized,
			wantError:      "Invalid authorization format",
		},
		{
			name:           "unexpected validation failure",
			allowAnonymous: true,
			header:         "Bearer broken",
			wantStatus:     http.StatusInternalServerError,
			wantError:      "Authentication error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mw := NewIdentityMiddleware(newTokens(), config.AuthConfig{
				AllowAnonymousAsDemo: tc.allowAnonymous,
				DemoUserID:           "demo-user",
			})

			var gotOwner string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotOwner, _ = shared.GetOwnerID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			mw.Resolve(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError == "" {
				assert.Equal(t, tc.wantOwner, gotOwner)
				return
			}

			assert.Empty(t, gotOwner, "next handler must not run")
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantError, body["error"])
			assert.Equal(t, false, body["success"])
		})
	}
}
