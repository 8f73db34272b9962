package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// ClassifierName is the responder name of the intent classifier.
const ClassifierName = "intent_classifier"

// Router prompts
const (
	PromptClassifierSystem = `You are the intent classifier of a restaurant ordering assistant.

Classify each customer request into exactly one intent:

1. "menu" when the customer wants to:
   - see the restaurant menu or what is available
   - learn about a dish, its ingredients or its price
   - browse or ask about specific menu items

2. "cart" when the customer wants to:
   - add items to the cart or remove them
   - see or clear the cart
   - manage, check out or finalize the order

Reply with the intent and a short reason for the choice.`

	PromptHistoryPrefix = "Conversation so far:\n"
	PromptCurrentQuery  = "Classify the intent of this request: %s"
)

// Router configuration
const (
	RouterTemperature = 0.1
)

// Error messages
const (
	ErrMsgClassifierFailed = "classifier failed"
)
