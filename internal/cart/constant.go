package cart

// UserDataKey is the user-data key the cart is stored under.
const UserDataKey = "cart"

const (
	StatusSuccess  = "success"
	StatusEmpty    = "empty"
	StatusNotFound = "not_found"
)

const (
	MsgAdded          = "Added %d x %s (₹%s each) to cart."
	MsgEmpty          = "Your cart is empty."
	MsgNotInCart      = "Error: '%s' is not in your cart."
	MsgRemovedLine    = "Removed %s from cart."
	MsgRemovedAll     = "Removed all %d x %s from cart."
	MsgRemovedPartial = "Removed %d x %s from cart. Remaining: %d"
	MsgCartHeader     = "Your Cart:"
	MsgCartLine       = "- %s: %d x ₹%s = ₹%s"
	MsgCartTotal      = " Total: ₹%.2f"
	MsgCleared        = "Cart has been cleared."
)
