package menu

import "errors"

var (
	ErrMenuUnavailable = errors.New("menu unavailable")
	ErrItemNotFound    = errors.New("menu item not found")
)
