package usecase

import (
	"restaurant-ordering-assistant/internal/session/repository"
	"restaurant-ordering-assistant/pkg/log"
)

// implUseCase is the private implementation of cart.UseCase.
type implUseCase struct {
	repo repository.UserDataRepository
	l    log.Logger
}

// New creates a cart UseCase persisting carts in the session user data.
func New(repo repository.UserDataRepository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
