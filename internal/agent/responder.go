package agent

import "context"

// Responder turns a task into an Output on behalf of a session.
// Name is the sender recorded in the message log for the responder's replies.
type Responder interface {
	Name() string
	Run(ctx context.Context, sessionID, task string) (Output, error)
}
