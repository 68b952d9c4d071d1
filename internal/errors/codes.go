// Package errors provides structured errors for team setup and container access.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Setup errors
	CodeInvalidConfiguration Code = "INVALID_CONFIGURATION"

	// Container errors
	CodeEmptyContainer Code = "EMPTY_CONTAINER"
	CodeFullContainer  Code = "FULL_CONTAINER"
)

// Sentinels for errors.Is; any *Error with the same code matches.
var (
	ErrInvalidConfiguration = New(CodeInvalidConfiguration, "invalid configuration")
	ErrEmptyContainer       = New(CodeEmptyContainer, "team is empty")
	ErrFullContainer        = New(CodeFullContainer, "team is full")
)
