package controllers

import "errors"

// Error taxonomy surfaced to the routes layer. Generation and filter
// failures never appear here: they are recovered inside the chat
// pipeline with a canned reply.
var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrLimitReached   = errors.New("daily limit reached")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)
