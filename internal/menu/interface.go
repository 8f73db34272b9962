package menu

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	GetMenu(ctx context.Context) (Menu, error)
	// FindItem matches name case-insensitively against the catalog.
	FindItem(ctx context.Context, name string) (Item, error)
	// Source describes where the catalog is read from.
	Source() string
}
