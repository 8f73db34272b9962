package router

// Intent represents user's intention
type Intent string

const (
	IntentMenu Intent = "menu"
	IntentCart Intent = "cart"
)

// Valid reports whether i is one of the routable intents.
func (i Intent) Valid() bool {
	return i == IntentMenu || i == IntentCart
}

// Output is the structured response of the classifier.
type Output struct {
	Intent    Intent `json:"intent"`
	Reasoning string `json:"reasoning"`
}

// IntentSchema is the JSON Schema the classifier must answer with.
func IntentSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"intent": map[string]interface{}{
				"type":        "string",
				"enum":        []string{string(IntentMenu), string(IntentCart)},
				"description": "menu for menu-related requests, cart for cart-related requests",
			},
			"reasoning": map[string]interface{}{
				"type":        "string",
				"description": "Brief explanation of why this intent was chosen",
			},
		},
		"required":             []string{"intent", "reasoning"},
		"additionalProperties": false,
	}
}
