package usecase

import (
	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/agent/memory"
	"restaurant-ordering-assistant/internal/chat"
	"restaurant-ordering-assistant/internal/router"
	"restaurant-ordering-assistant/internal/session/repository"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

type implUseCase struct {
	repo       repository.MessageRepository
	router     router.Router
	responders map[router.Intent]agent.Responder
	l          pkgLog.Logger
}

var _ chat.UseCase = (*implUseCase)(nil)

// New wires the orchestrator. Both responders are wrapped so they see and extend the session log.
func New(repo repository.MessageRepository, rt router.Router, menuAgent, cartAgent agent.Responder, l pkgLog.Logger) chat.UseCase {
	return &implUseCase{
		repo:   repo,
		router: rt,
		responders: map[router.Intent]agent.Responder{
			router.IntentMenu: memory.Wrap(menuAgent, repo, memory.WithLogger(l)),
			router.IntentCart: memory.Wrap(cartAgent, repo, memory.WithLogger(l)),
		},
		l: l,
	}
}
