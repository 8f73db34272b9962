package usecase

import (
	"context"
	"fmt"

	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/session"
)

// Remove takes units of an item out of the cart. The item is matched case-insensitively.
// Without a quantity, or with one at least the stored quantity, the whole line goes.
// A quantity below 1 is rejected with cart.ErrInvalidItem.
func (uc *implUseCase) Remove(ctx context.Context, sessionID string, input cart.RemoveInput) (cart.Output, error) {
	if input.Quantity != nil && *input.Quantity < 1 {
		return cart.Output{}, fmt.Errorf("%w: quantity %d below 1", cart.ErrInvalidItem, *input.Quantity)
	}

	var out cart.Output
	err := uc.repo.UpdateUserData(ctx, sessionID, func(current session.UserData) (session.UserData, error) {
		c, err := loadCart(current)
		if err != nil {
			return nil, err
		}

		if c.IsEmpty() {
			out = emptyOutput()
			return nil, nil
		}

		line, ok := c.Find(input.Name)
		if !ok {
			out = cart.Output{
				Status:  cart.StatusNotFound,
				Message: fmt.Sprintf(cart.MsgNotInCart, input.Name),
				Items:   toLineItems(c.Lines()),
				Total:   c.Total(),
			}
			return nil, nil
		}

		var msg string
		switch {
		case input.Quantity == nil:
			c.Delete(line.Name)
			msg = fmt.Sprintf(cart.MsgRemovedLine, line.Name)
		case *input.Quantity >= line.Quantity:
			c.Delete(line.Name)
			msg = fmt.Sprintf(cart.MsgRemovedAll, line.Quantity, line.Name)
		default:
			remaining := c.Decrement(line.Name, *input.Quantity)
			msg = fmt.Sprintf(cart.MsgRemovedPartial, *input.Quantity, line.Name, remaining)
		}

		out = cart.Output{
			Status:  cart.StatusSuccess,
			Message: msg,
			Items:   toLineItems(c.Lines()),
			Total:   c.Total(),
		}
		return storeCart(current, c)
	})
	if err != nil {
		uc.l.Errorf(ctx, "cart.usecase.Remove: %v", err)
		return cart.Output{}, err
	}

	return out, nil
}
