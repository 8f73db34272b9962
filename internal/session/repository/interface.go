package repository

import (
	"context"

	"restaurant-ordering-assistant/internal/session"
)

// Repository is the composed interface for the session store.
type Repository interface {
	MessageRepository
	UserDataRepository

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// MessageRepository manages the append-only message log of a session.
type MessageRepository interface {
	AppendMessage(ctx context.Context, sessionID, sender, text string) error
	// ReadHistory returns entries in append order, or an empty slice for an unknown session.
	ReadHistory(ctx context.Context, sessionID string) ([]session.Message, error)
}

// UpdateFunc receives the current user data and returns the record to store.
// Returning a nil UserData leaves the stored record untouched.
type UpdateFunc func(current session.UserData) (session.UserData, error)

// UserDataRepository manages the per-session key/value record.
type UserDataRepository interface {
	WriteUserData(ctx context.Context, sessionID string, data session.UserData) error
	// ReadUserData returns an empty map for an unknown session.
	ReadUserData(ctx context.Context, sessionID string) (session.UserData, error)
	// UpdateUserData runs fn as an optimistic read-modify-write.
	UpdateUserData(ctx context.Context, sessionID string, fn UpdateFunc) error
}
