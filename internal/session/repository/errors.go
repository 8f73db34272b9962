package repository

import "errors"

var (
	ErrStoreUnavailable = errors.New("session store unavailable")
	ErrCorruptRecord    = errors.New("corrupt session record")
	ErrConcurrentUpdate = errors.New("session record changed concurrently")
)
