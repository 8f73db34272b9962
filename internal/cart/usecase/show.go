package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant-ordering-assistant/internal/cart"
)

// Show renders every line and the recomputed total.
func (uc *implUseCase) Show(ctx context.Context, sessionID string) (cart.Output, error) {
	data, err := uc.repo.ReadUserData(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "cart.usecase.Show: %v", err)
		return cart.Output{}, err
	}

	c, err := loadCart(data)
	if err != nil {
		uc.l.Errorf(ctx, "cart.usecase.Show: %v", err)
		return cart.Output{}, err
	}
	if c.IsEmpty() {
		return emptyOutput(), nil
	}

	lines := c.Lines()
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = fmt.Sprintf(cart.MsgCartLine, l.Name, l.Quantity, formatPrice(l.Price), formatPrice(l.Total()))
	}

	total := c.Total()
	var sb strings.Builder
	sb.WriteString(cart.MsgCartHeader)
	sb.WriteString("\n")
	sb.WriteString(strings.Join(rows, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(cart.MsgCartTotal, total))

	return cart.Output{
		Status:  cart.StatusSuccess,
		Message: sb.String(),
		Items:   toLineItems(lines),
		Total:   total,
	}, nil
}
