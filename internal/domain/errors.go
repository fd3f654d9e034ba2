package domain

import "errors"

// Sentinel errors for the tree engine - match with errors.Is().
// Services wrap these with %w plus a human-readable message; the HTTP
// layer maps them to status codes without inspecting the message.
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation failed")
	ErrParentNotFound = errors.New("parent folder not found")
	ErrSelfParent     = errors.New("folder cannot be its own parent")
	ErrCycle          = errors.New("move would create a cycle")
	ErrHasChildren    = errors.New("folder has child folders")
)
