package tools

import (
	"context"
	"fmt"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/cart"
)

// ShowCartTool lists the session's cart with its total.
type ShowCartTool struct {
	uc cart.UseCase
}

func NewShowCartTool(uc cart.UseCase) agent.Tool {
	return &ShowCartTool{uc: uc}
}

func (t *ShowCartTool) Name() string {
	return "show_cart"
}

func (t *ShowCartTool) Description() string {
	return "Show all items in the cart with total price."
}

func (t *ShowCartTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *ShowCartTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	out, err := t.uc.Show(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("show cart failed: %w", err)
	}
	return out, nil
}
