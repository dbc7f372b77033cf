package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/domain"
)

// getOwnerIDFromContext extracts the owner resolved by the identity
// middleware from the request context.
func getOwnerIDFromContext(r *http.Request) (string, bool) {
	return shared.GetOwnerID(r.Context())
}

// getPathID extracts a non-blank task identifier from the URL path.
// Identifiers are opaque, so no format is enforced.
func getPathID(r *http.Request, paramName string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, paramName))
	if id == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return id, nil
}

// handleOwnerAndPathID is a composite helper that extracts both the owner
// from context and an identifier from the path. It writes an error response
// if either extraction fails.
func handleOwnerAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	log *slog.Logger,
) (string, string, bool) {
	ownerID, ok := getOwnerIDFromContext(r)
	if !ok {
		log.Warn("owner ID not found in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return "", "", false
	}

	pathID, err := getPathID(r, paramName)
	if err != nil {
		log.Warn("invalid path parameter", slog.String("param_name", paramName))
		HandleAPIError(w, r, err, "")
		return "", "", false
	}

	return ownerID, pathID, true
}

// decodeRaw unmarshals an already-read JSON fragment, reporting failures the
// same way shared.DecodeJSON does.
func decodeRaw(raw json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", shared.ErrInvalidJSON, err)
	}
	return nil
}
