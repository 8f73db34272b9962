package assistant

// Log prefixes
const (
	LogPrefixRun     = "internal.agent.assistant.Run"
	LogPrefixReflect = "internal.agent.assistant.reflect"
)

// Error messages
const (
	ErrMsgToolNotFound  = "tool not found"
	MsgMaxStepsExceeded = "Sorry, I could not finish that request. Please try rephrasing it or asking for one thing at a time."
)

// Log messages
const (
	LogMsgAgentStep          = "%s step %d/%d"
	LogMsgAgentFinished      = "%s finished at step %d"
	LogMsgAgentCallingTool   = "%s calling tool: %s with args: %+v"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgAgentMaxSteps      = "%s exceeded max steps (%d)"
)

// Configuration
const (
	DefaultMaxSteps = 5

	// reflectPrompt asks the model to restate its final answer once tools are done.
	reflectPrompt = "Return your final answer as a single JSON object matching the required schema."
)

// Responder names, recorded as senders in the message log.
const (
	MenuAgentName = "menu_agent"
	CartAgentName = "cart_agent"
)

// System prompts
const (
	PromptMenuAgent = `You are a restaurant menu assistant.
Use the get_menu tool to fetch the latest menu before answering.
Answer with the menu items relevant to the request, each with its name, description and price.`

	PromptCartAgent = `You are a restaurant cart assistant.

Your responsibilities:
1. Add menu items to the customer's cart with add_to_cart
2. Remove items from the cart with remove_from_cart
3. Show the items in the cart with quantities and prices with show_cart
4. Clear the entire cart with clear_cart when asked

Use exact menu item names. When adding, quantity defaults to 1.
The previous conversation may list the menu; pass the item's price from it when you know it.
After each operation, confirm clearly what changed.`
)
