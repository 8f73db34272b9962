package assistant

import (
	"context"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/pkg/llmprovider"
)

// Generator is the LLM entry point an Assistant reasons with.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config describes one named responder.
type Config struct {
	// Name is recorded as the sender of the responder's replies.
	Name         string
	SystemPrompt string
	Tools        *agent.ToolRegistry

	// ResponseSchema turns the final answer into a structured output.
	ResponseSchema map[string]interface{}
	SchemaName     string

	Temperature float64
	MaxSteps    int
}
