package tools

import (
	"context"
	"fmt"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/cart"
)

// RemoveFromCartTool removes some or all units of an item from the session's cart.
type RemoveFromCartTool struct {
	uc cart.UseCase
}

func NewRemoveFromCartTool(uc cart.UseCase) agent.Tool {
	return &RemoveFromCartTool{uc: uc}
}

func (t *RemoveFromCartTool) Name() string {
	return "remove_from_cart"
}

func (t *RemoveFromCartTool) Description() string {
	return "Remove a menu item from the cart. Omit quantity to remove the item entirely."
}

func (t *RemoveFromCartTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"item_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the item in the cart",
			},
			"quantity": map[string]interface{}{
				"type":        "integer",
				"description": "Number of units to remove, at least 1",
				"minimum":     1,
			},
		},
		"required": []string{"item_name"},
	}
}

func (t *RemoveFromCartTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := stringParam(params, "item_name")
	if err != nil {
		return nil, err
	}

	input := cart.RemoveInput{Name: name}
	quantity, ok, err := intParam(params, "quantity")
	if err != nil {
		return nil, err
	}
	if ok {
		if quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", agent.ErrInvalidToolArgument)
		}
		input.Quantity = &quantity
	}

	out, err := t.uc.Remove(ctx, sid, input)
	if err != nil {
		return nil, fmt.Errorf("remove from cart failed: %w", err)
	}
	return out, nil
}
