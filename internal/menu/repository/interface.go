package repository

import (
	"context"

	"restaurant-ordering-assistant/internal/menu"
)

// Repository reads the static restaurant catalog.
type Repository interface {
	ListMenuItems(ctx context.Context) ([]menu.Item, error)
	Source() string
}
