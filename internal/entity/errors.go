package entity

import "errors"

// Failure taxonomy shared by every use case. Handlers map these to HTTP
// status codes; everything else is a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
)
