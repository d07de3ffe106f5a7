package apperr

import "errors"

// Invalid is returned when an input record fails domain validation.
var Invalid = errors.New("invalid input")

// Conflict indicates a state conflict: a concurrent mutation won the race (HTTP 409).
var Conflict = errors.New("conflict")

// NotFound indicates that the referenced resource does not exist.
var NotFound = errors.New("not found")

// Config indicates a malformed configuration, e.g. a weight table that does
// not sum to 1.0. Fatal at startup, never silently corrected.
var Config = errors.New("invalid configuration")
