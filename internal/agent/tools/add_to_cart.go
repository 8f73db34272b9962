package tools

import (
	"context"
	"errors"
	"fmt"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/menu"
)

// AddToCartTool adds a menu item to the session's cart.
type AddToCartTool struct {
	cartUC cart.UseCase
	menuUC menu.UseCase
}

func NewAddToCartTool(cartUC cart.UseCase, menuUC menu.UseCase) agent.Tool {
	return &AddToCartTool{cartUC: cartUC, menuUC: menuUC}
}

func (t *AddToCartTool) Name() string {
	return "add_to_cart"
}

func (t *AddToCartTool) Description() string {
	return "Add a menu item to the cart with specified quantity. Use the exact item name from the menu."
}

func (t *AddToCartTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"item_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the menu item",
			},
			"quantity": map[string]interface{}{
				"type":        "integer",
				"description": "Number of units to add (default 1)",
			},
			"price": map[string]interface{}{
				"type":        "number",
				"description": "Unit price from the menu, used only when the item cannot be found in the catalog",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Item description from the menu",
			},
		},
		"required": []string{"item_name"},
	}
}

func (t *AddToCartTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := stringParam(params, "item_name")
	if err != nil {
		return nil, err
	}
	quantity, _, err := intParam(params, "quantity")
	if err != nil {
		return nil, err
	}

	item, err := t.resolve(ctx, name, params)
	if err != nil {
		return nil, err
	}

	out, err := t.cartUC.Add(ctx, sid, cart.AddInput{Item: item, Quantity: quantity})
	if err != nil {
		return nil, fmt.Errorf("add to cart failed: %w", err)
	}
	return out, nil
}

// resolve prefers the catalog entry so the stored price cannot drift from the menu.
func (t *AddToCartTool) resolve(ctx context.Context, name string, params map[string]interface{}) (menu.Item, error) {
	item, err := t.menuUC.FindItem(ctx, name)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, menu.ErrItemNotFound) && !errors.Is(err, menu.ErrMenuUnavailable) {
		return menu.Item{}, err
	}

	price, ok, perr := floatParam(params, "price")
	if perr != nil {
		return menu.Item{}, perr
	}
	if !ok {
		return menu.Item{}, fmt.Errorf("'%s' is not on the menu: %w", name, err)
	}
	description, _ := params["description"].(string)
	return menu.Item{Name: name, Description: description, Price: price}, nil
}
