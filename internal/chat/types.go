package chat

import (
	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/router"
)

// --- UseCase Inputs ---

type ProcessQueryInput struct {
	Query     string
	SessionID string
}

// --- UseCase Outputs ---

type ProcessQueryOutput struct {
	Response  agent.Output
	Intent    router.Intent
	Reasoning string
	Responder string
}
