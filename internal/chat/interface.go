package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessQuery logs the user turn, classifies it and lets the matching responder answer.
	ProcessQuery(ctx context.Context, input ProcessQueryInput) (ProcessQueryOutput, error)
}
