package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/session"
)

// Add puts quantity units of input.Item into the cart, merging with an existing line of the exact same name.
func (uc *implUseCase) Add(ctx context.Context, sessionID string, input cart.AddInput) (cart.Output, error) {
	if strings.TrimSpace(input.Item.Name) == "" || input.Item.Price < 0 {
		return cart.Output{}, cart.ErrInvalidItem
	}
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var out cart.Output
	err := uc.repo.UpdateUserData(ctx, sessionID, func(current session.UserData) (session.UserData, error) {
		c, err := loadCart(current)
		if err != nil {
			return nil, err
		}
		c.Add(input.Item, quantity)

		out = cart.Output{
			Status:  cart.StatusSuccess,
			Message: fmt.Sprintf(cart.MsgAdded, quantity, input.Item.Name, formatPrice(input.Item.Price)),
			Items:   toLineItems(c.Lines()),
			Total:   c.Total(),
		}
		return storeCart(current, c)
	})
	if err != nil {
		uc.l.Errorf(ctx, "cart.usecase.Add: %v", err)
		return cart.Output{}, err
	}

	return out, nil
}
