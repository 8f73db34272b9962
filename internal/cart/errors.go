package cart

import "errors"

var (
	ErrInvalidItem = errors.New("invalid cart item")
	ErrInvalidCart = errors.New("invalid stored cart")
)
