package tools

import (
	"context"
	"errors"
	"fmt"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/menu"
)

// GetMenuTool lists the restaurant catalog.
type GetMenuTool struct {
	uc menu.UseCase
}

func NewGetMenuTool(uc menu.UseCase) agent.Tool {
	return &GetMenuTool{uc: uc}
}

func (t *GetMenuTool) Name() string {
	return "get_menu"
}

func (t *GetMenuTool) Description() string {
	return "Get the restaurant menu with all available items, descriptions, and prices."
}

func (t *GetMenuTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

// Execute returns the catalog. An unreadable menu file is reported to the model as text.
func (t *GetMenuTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	m, err := t.uc.GetMenu(ctx)
	if errors.Is(err, menu.ErrMenuUnavailable) {
		return fmt.Sprintf("Error: Menu file not found at %s", t.uc.Source()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menu failed: %w", err)
	}
	return m, nil
}
