package router

import (
	"context"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/agent/assistant"
	"restaurant-ordering-assistant/internal/agent/memory"
	"restaurant-ordering-assistant/internal/session"
	"restaurant-ordering-assistant/internal/session/repository"
	"restaurant-ordering-assistant/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	Classify(ctx context.Context, sessionID, query string, history []session.Message) (Output, error)
}

// SemanticRouter classifies user intent using an LLM responder
type SemanticRouter struct {
	classifier agent.Responder
	l          log.Logger
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter around classifier.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(classifier agent.Responder, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		classifier: classifier,
		l:          l,
	}
}

// NewClassifier builds the intent classifier responder. It never records to the message log.
func NewClassifier(llm assistant.Generator, repo repository.MessageRepository, l log.Logger) agent.Responder {
	a := assistant.New(llm, assistant.Config{
		Name:           ClassifierName,
		SystemPrompt:   PromptClassifierSystem,
		ResponseSchema: IntentSchema(),
		SchemaName:     "intent_classification",
		Temperature:    RouterTemperature,
	}, l)
	return memory.Wrap(a, repo, memory.WithoutRecording(), memory.WithLogger(l))
}
