package assistant

import (
	"restaurant-ordering-assistant/internal/agent/tools"
	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/menu"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

// NewMenuAgent answers menu questions with a structured list of items.
func NewMenuAgent(llm Generator, menuUC menu.UseCase, l pkgLog.Logger) *Assistant {
	return New(llm, Config{
		Name:           MenuAgentName,
		SystemPrompt:   PromptMenuAgent,
		Tools:          tools.MenuTools(menuUC),
		ResponseSchema: MenuSchema(),
		SchemaName:     "menu",
	}, l)
}

// NewCartAgent manages the session cart and answers in text.
func NewCartAgent(llm Generator, cartUC cart.UseCase, menuUC menu.UseCase, l pkgLog.Logger) *Assistant {
	return New(llm, Config{
		Name:         CartAgentName,
		SystemPrompt: PromptCartAgent,
		Tools:        tools.CartTools(cartUC, menuUC),
	}, l)
}

// MenuSchema describes the structured menu answer.
func MenuSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"items": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name":        map[string]interface{}{"type": "string"},
						"description": map[string]interface{}{"type": "string"},
						"price":       map[string]interface{}{"type": "number"},
					},
					"required":             []string{"name", "description", "price"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"items"},
		"additionalProperties": false,
	}
}
