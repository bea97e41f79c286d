package domain

import "errors"

// Error kinds shared by every layer. Processors wrap one of these so that the
// API layer can map failures without knowing each processor's sentinels.
var (
	ErrBadInput     = errors.New("bad input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrIntegrity    = errors.New("integrity violation")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)
