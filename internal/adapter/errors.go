package adapter

import "errors"

// Sentinel errors mapped from upstream HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrTooLarge            = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrUnexpectedResponse is returned when an upstream answers 2xx with a
	// body that cannot be understood.
	ErrUnexpectedResponse = errors.New("unexpected upstream response")

	// ErrInvalidAddress is returned when a configured base URL is empty or
	// malformed.
	ErrInvalidAddress = errors.New("invalid service address")
)
