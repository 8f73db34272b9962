package tools

import (
	"context"
	"fmt"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/cart"
)

// ClearCartTool empties the session's cart.
type ClearCartTool struct {
	uc cart.UseCase
}

func NewClearCartTool(uc cart.UseCase) agent.Tool {
	return &ClearCartTool{uc: uc}
}

func (t *ClearCartTool) Name() string {
	return "clear_cart"
}

func (t *ClearCartTool) Description() string {
	return "Clear all items from the cart."
}

func (t *ClearCartTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *ClearCartTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	out, err := t.uc.Clear(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("clear cart failed: %w", err)
	}
	return out, nil
}
