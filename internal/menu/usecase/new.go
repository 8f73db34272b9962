package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"restaurant-ordering-assistant/internal/menu"
	"restaurant-ordering-assistant/internal/menu/repository"
	"restaurant-ordering-assistant/pkg/log"
)

const (
	catalogCacheKey  = "catalog"
	catalogCacheSize = 1
)

// implUseCase is the private implementation of menu.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache *expirable.LRU[string, []menu.Item]
	l     log.Logger
}

// New creates a menu UseCase. A parsed catalog is reused for cacheTTL; a zero TTL disables caching.
func New(repo repository.Repository, cacheTTL time.Duration, l log.Logger) *implUseCase {
	uc := &implUseCase{repo: repo, l: l}
	if cacheTTL > 0 {
		uc.cache = expirable.NewLRU[string, []menu.Item](catalogCacheSize, nil, cacheTTL)
	}
	return uc
}
