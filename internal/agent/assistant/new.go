package assistant

import (
	"restaurant-ordering-assistant/internal/agent"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

// Assistant runs a Reason, Act, Observe loop over the configured tools.
type Assistant struct {
	llm Generator
	cfg Config
	l   pkgLog.Logger
}

var _ agent.Responder = (*Assistant)(nil)

func New(llm Generator, cfg Config, l pkgLog.Logger) *Assistant {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.SchemaName == "" {
		cfg.SchemaName = cfg.Name
	}
	return &Assistant{
		llm: llm,
		cfg: cfg,
		l:   l,
	}
}

func (a *Assistant) Name() string {
	return a.cfg.Name
}
