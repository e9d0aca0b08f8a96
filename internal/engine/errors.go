package engine

import "errors"

// ErrInvalidInput marks a precondition failure on engine inputs (empty or
// zero-mean series, series too short for the trend window). Wrapped errors
// name the precondition that failed.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnknownScenario marks a scenario type outside the three known variants.
// This is a programming or configuration error, not a recoverable condition.
var ErrUnknownScenario = errors.New("unknown scenario type")
