package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/session"
)

// loadCart decodes the cart held in data. A missing or null entry yields an empty cart.
func loadCart(data session.UserData) (cart.Cart, error) {
	var c cart.Cart
	raw, ok := data[cart.UserDataKey]
	if !ok || len(raw) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return cart.Cart{}, fmt.Errorf("%w: %v", cart.ErrInvalidCart, err)
	}
	return c, nil
}

// storeCart returns a copy of data with the cart replaced; all other keys are kept as is.
func storeCart(data session.UserData, c cart.Cart) (session.UserData, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	next := data.Clone()
	next[cart.UserDataKey] = raw
	return next, nil
}

// formatPrice prints whole amounts without decimals and everything else with two.
func formatPrice(p float64) string {
	if p == math.Trunc(p) && !math.IsInf(p, 0) {
		return strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func toLineItems(lines []cart.Line) []cart.LineItem {
	items := make([]cart.LineItem, len(lines))
	for i, l := range lines {
		items[i] = cart.LineItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price,
			LineTotal: l.Total(),
		}
	}
	return items
}

func emptyOutput() cart.Output {
	return cart.Output{
		Status:  cart.StatusEmpty,
		Message: cart.MsgEmpty,
		Items:   []cart.LineItem{},
	}
}
