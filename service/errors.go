package service

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Handlers map these onto the
// HTTP status codes of the API contract (400/401/403/404) with
// errors.Is, so services wrap rather than replace them.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// ErrInvalidTransition covers illegal referral status transitions.
// It is a validation failure, so errors.Is(err, ErrValidation) holds.
var ErrInvalidTransition = fmt.Errorf("illegal status transition: %w", ErrValidation)
