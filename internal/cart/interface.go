package cart

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, sessionID string, input AddInput) (Output, error)
	Remove(ctx context.Context, sessionID string, input RemoveInput) (Output, error)
	Show(ctx context.Context, sessionID string) (Output, error)
	Clear(ctx context.Context, sessionID string) (Output, error)
}
