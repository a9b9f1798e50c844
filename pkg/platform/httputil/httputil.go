// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "saarthi/pkg/domain-errors"
)

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP error response.
// Internal errors deliberately omit the description so implementation detail
// never leaks to clients; all other codes include it.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	description := ""

	var de dErrors.DomainError
	if errors.As(err, &de) {
		code = de.Code
		description = de.Description
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal && description != "" {
		body["error_description"] = description
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

// WriteInternalError writes a generic 500 response. When includeDetail is set
// (non-production builds) the underlying error text is attached for debugging.
func WriteInternalError(w http.ResponseWriter, err error, includeDetail bool) {
	body := map[string]string{
		"error":             string(dErrors.CodeInternal),
		"error_description": "Something went wrong. Please try again.",
	}
	if includeDetail && err != nil {
		body["detail"] = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}

// DecodeJSON decodes the request body into v, returning a bad_request domain
// error on malformed input.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}
