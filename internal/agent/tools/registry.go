package tools

import (
	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/menu"
)

// MenuTools returns the registry for the menu responder.
func MenuTools(menuUC menu.UseCase) *agent.ToolRegistry {
	return agent.NewToolRegistry(NewGetMenuTool(menuUC))
}

// CartTools returns the registry for the cart responder.
func CartTools(cartUC cart.UseCase, menuUC menu.UseCase) *agent.ToolRegistry {
	return agent.NewToolRegistry(
		NewAddToCartTool(cartUC, menuUC),
		NewRemoveFromCartTool(cartUC),
		NewShowCartTool(cartUC),
		NewClearCartTool(cartUC),
	)
}
