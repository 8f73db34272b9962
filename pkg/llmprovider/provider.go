package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "azure", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Normalized message roles. Adapters translate them to the provider's vocabulary.
const (
	RoleUser     = "user"
	RoleModel    = "model"
	RoleFunction = "function"
)

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int

	// ResponseSchema asks for a JSON reply matching this JSON Schema.
	// Providers that cannot combine it with Tools must not receive both.
	ResponseSchema     map[string]interface{}
	ResponseSchemaName string
}

// Message represents a conversation message
type Message struct {
	Role  string // RoleUser, RoleModel or RoleFunction
	Parts []Part
}

// TextMessage builds a single-part text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}

// Part represents a message part (text or function call)
type Part struct {
	Text             string
	FunctionCall     *FunctionCall
	FunctionResponse *FunctionResponse
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's function call request
type FunctionCall struct {
	ID   string // provider call id, empty for providers without one
	Name string
	Args map[string]interface{}
}

// FunctionResponse represents a function execution result
type FunctionResponse struct {
	ID       string // matches FunctionCall.ID
	Name     string
	Response interface{}
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text concatenates the text parts of m.
func (m Message) Text() string {
	var out string
	for _, p := range m.Parts {
		out += p.Text
	}
	return out
}

// FunctionCalls returns the function calls requested in m, in order.
func (m Message) FunctionCalls() []*FunctionCall {
	var calls []*FunctionCall
	for _, p := range m.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, p.FunctionCall)
		}
	}
	return calls
}
