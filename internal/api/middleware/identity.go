package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"github.com/phrazzld/taskflow-api/internal/redact"
	"github.com/phrazzld/taskflow-api/internal/service/auth"
)

// IdentityMiddleware resolves the owner every request is scoped to.
//
// A valid bearer token yields its subject. An Authorization header that is
// present but unusable is always rejected. Requests without the header act
// as the demo owner when anonymous access is allowed, and are rejected
// otherwise.
type IdentityMiddleware struct {
	tokens         auth.TokenService
	allowAnonymous bool
	demoOwnerID    string
}

// NewIdentityMiddleware creates an IdentityMiddleware from auth configuration.
func NewIdentityMiddleware(tokens auth.TokenService, cfg config.AuthConfig) *IdentityMiddleware {
	return &IdentityMiddleware{
		tokens:         tokens,
		allowAnonymous: cfg.AllowAnonymousAsDemo,
		demoOwnerID:    cfg.DemoUserID,
	}
}

// Resolve adds the owner ID to the request context or responds 401.
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			if !m.allowAnonymous || m.demoOwnerID == "" {
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
					"Unauthorized", auth.ErrMissingToken)
				return
			}
			next.ServeHTTP(w, r.WithContext(m.withOwner(r, log, m.demoOwnerID)))
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Token expired", err)
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrWrongTokenType),
				errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid token", err,
					shared.WithElevatedLogLevel())
			default:
				log.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(m.withOwner(r, log, claims.OwnerID)))
	})
}

func (m *IdentityMiddleware) withOwner(r *http.Request, log *slog.Logger, ownerID string) context.Context {
	ctx := shared.WithOwnerID(r.Context(), ownerID)
	return logger.WithContext(ctx, log.With(slog.String("owner_id", ownerID)))
}
