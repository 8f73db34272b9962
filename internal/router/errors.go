package router

import "errors"

// ErrInvalidIntent is returned when the classifier reply is not a usable intent.
var ErrInvalidIntent = errors.New("invalid intent")
