package agent

import "errors"

var (
	ErrInvalidStructuredOutput = errors.New("invalid structured output")
	ErrMissingSession          = errors.New("session id missing from context")
	ErrInvalidToolArgument     = errors.New("invalid tool argument")
)
