package usecase

import (
	"context"

	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/session"
)

// Clear empties the cart. The user-data record itself is kept.
func (uc *implUseCase) Clear(ctx context.Context, sessionID string) (cart.Output, error) {
	err := uc.repo.UpdateUserData(ctx, sessionID, func(current session.UserData) (session.UserData, error) {
		return storeCart(current, cart.Cart{})
	})
	if err != nil {
		uc.l.Errorf(ctx, "cart.usecase.Clear: %v", err)
		return cart.Output{}, err
	}

	return cart.Output{
		Status:  cart.StatusSuccess,
		Message: cart.MsgCleared,
		Items:   []cart.LineItem{},
	}, nil
}
