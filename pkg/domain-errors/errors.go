// Package dErrors defines coded domain errors shared across handlers and
// services, plus their mapping to HTTP status codes. Services return these;
// the HTTP layer translates them without inspecting error strings.
package dErrors

import "net/http"

// Code identifies a class of failure. The string value is what clients see in
// the "error" field of an error response.
type Code string

const (
	CodeBadRequest      Code = "bad_request"
	CodeNotFound        Code = "not_found"
	CodeTooManyRequests Code = "too_many_requests"
	CodeInternal        Code = "internal_error"
)

// DomainError carries a code and a human-readable description.
type DomainError struct {
	Code        Code
	Description string
}

func (e DomainError) Error() string {
	return string(e.Code) + ": " + e.Description
}

// New constructs a DomainError with the given code and description.
func New(code Code, description string) DomainError {
	return DomainError{Code: code, Description: description}
}

// ToHTTPStatus maps a domain error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
