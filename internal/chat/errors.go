package chat

import "errors"

var (
	ErrEmptyQuery    = errors.New("query is required")
	ErrEmptySession  = errors.New("session id is required")
	ErrInvalidIntent = errors.New("could not determine intent")
	ErrNoResponder   = errors.New("no responder for intent")
)
