package usecase

import (
	"context"
	"strings"

	"restaurant-ordering-assistant/internal/menu"
)

// GetMenu returns the catalog, served from cache while fresh.
func (uc *implUseCase) GetMenu(ctx context.Context) (menu.Menu, error) {
	items, err := uc.items(ctx)
	if err != nil {
		return menu.Menu{}, err
	}
	out := make([]menu.Item, len(items))
	copy(out, items)
	return menu.Menu{Items: out}, nil
}

// FindItem returns the catalog entry whose name matches case-insensitively.
func (uc *implUseCase) FindItem(ctx context.Context, name string) (menu.Item, error) {
	items, err := uc.items(ctx)
	if err != nil {
		return menu.Item{}, err
	}

	name = strings.TrimSpace(name)
	for _, item := range items {
		if strings.EqualFold(item.Name, name) {
			return item, nil
		}
	}
	return menu.Item{}, menu.ErrItemNotFound
}

func (uc *implUseCase) Source() string {
	return uc.repo.Source()
}

func (uc *implUseCase) items(ctx context.Context) ([]menu.Item, error) {
	if uc.cache != nil {
		if items, ok := uc.cache.Get(catalogCacheKey); ok {
			return items, nil
		}
	}

	items, err := uc.repo.ListMenuItems(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "menu.usecase.items: %v", err)
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Add(catalogCacheKey, items)
	}
	return items, nil
}
