package llmprovider

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"restaurant-ordering-assistant/pkg/deepseek"
)

func conversation() []Message {
	return []Message{
		TextMessage(RoleUser, "add a pizza"),
		{Role: RoleModel, Parts: []Part{{FunctionCall: &FunctionCall{ID: "call_1", Name: "add_to_cart", Args: map[string]interface{}{"item_name": "Pizza"}}}}},
		{Role: RoleFunction, Parts: []Part{{FunctionResponse: &FunctionResponse{ID: "call_1", Name: "add_to_cart", Response: map[string]string{"message": "ok"}}}}},
	}
}

func TestConvertToDeepSeekMessages(t *testing.T) {
	msgs := convertToDeepSeekMessages(conversation())
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[0].Content != "add a pizza" {
		t.Errorf("unexpected user message %+v", msgs[0])
	}
	if msgs[1].Role != "assistant" || len(msgs[1].ToolCalls) != 1 || msgs[1].ToolCalls[0].ID != "call_1" {
		t.Errorf("unexpected assistant message %+v", msgs[1])
	}
	if msgs[1].ToolCalls[0].Function.Arguments != `{"item_name":"Pizza"}` {
		t.Errorf("unexpected arguments %s", msgs[1].ToolCalls[0].Function.Arguments)
	}
	if msgs[2].Role != "tool" || msgs[2].ToolCallID != "call_1" || msgs[2].Content != `{"message":"ok"}` {
		t.Errorf("unexpected tool message %+v", msgs[2])
	}
}

func TestConvertFromDeepSeekResponse(t *testing.T) {
	resp := convertFromDeepSeekResponse(&deepseek.Response{
		Model: "deepseek-chat",
		Choices: []deepseek.Choice{{Message: deepseek.Message{
			Role: "assistant",
			ToolCalls: []deepseek.ToolCall{
				{ID: "a", Function: deepseek.FunctionCall{Name: "show_cart", Arguments: "{}"}},
				{ID: "b", Function: deepseek.FunctionCall{Name: "clear_cart", Arguments: "not json"}},
			},
		}}},
	})
	calls := resp.Content.FunctionCalls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[1].Args == nil {
		t.Errorf("undecodable arguments must yield an empty map")
	}
	if resp.Content.Role != RoleModel {
		t.Errorf("unexpected role %s", resp.Content.Role)
	}
}

type fakeDeepSeek struct {
	got *deepseek.Request
	err error
}

func (f *fakeDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &deepseek.Response{Choices: []deepseek.Choice{{Message: deepseek.Message{Content: `{"intent":"cart"}`}}}}, nil
}

func (f *fakeDeepSeek) Model() string { return "deepseek-chat" }

func TestDeepSeekAdapter_ResponseSchema(t *testing.T) {
	fake := &fakeDeepSeek{}
	a := NewDeepSeekAdapter(fake)

	sys := TextMessage("", "classify")
	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: &sys,
		Messages:          []Message{TextMessage(RoleUser, "add pizza")},
		ResponseSchema:    map[string]interface{}{"type": "object"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content.Text() != `{"intent":"cart"}` {
		t.Errorf("unexpected text %q", resp.Content.Text())
	}
	if fake.got.ResponseFormat == nil || fake.got.ResponseFormat.Type != deepseek.ResponseFormatJSON {
		t.Errorf("expected JSON response format")
	}
	if fake.got.Messages[0].Role != "system" || fake.got.Messages[0].Content != "classify" {
		t.Errorf("expected system prompt first, got %+v", fake.got.Messages[0])
	}
	last := fake.got.Messages[len(fake.got.Messages)-1]
	if last.Role != "system" {
		t.Errorf("expected schema instruction last, got %+v", last)
	}
}

type fakeOpenAI struct {
	got openai.ChatCompletionRequest
	err error
}

func (f *fakeOpenAI) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.got = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Model: "gpt-4o",
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleAssistant,
			ToolCalls: []openai.ToolCall{{
				ID:       "call_9",
				Type:     openai.ToolTypeFunction,
				Function: openai.FunctionCall{Name: "show_cart", Arguments: "{}"},
			}},
		}}},
		Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12},
	}, nil
}

func (f *fakeOpenAI) Model() string  { return "gpt-4o" }
func (f *fakeOpenAI) Flavor() string { return "azure" }

func TestOpenAIAdapter(t *testing.T) {
	fake := &fakeOpenAI{}
	a := NewOpenAIAdapter(fake, "azure")

	sys := TextMessage("", "You are a cart assistant")
	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: &sys,
		Messages:          conversation(),
		Tools:             []Tool{{Name: "show_cart", Description: "Show the cart"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.got.Messages) != 4 {
		t.Fatalf("expected system + 3 messages, got %d", len(fake.got.Messages))
	}
	if fake.got.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("expected system message first")
	}
	if fake.got.Messages[3].Role != openai.ChatMessageRoleTool || fake.got.Messages[3].ToolCallID != "call_1" {
		t.Errorf("unexpected tool message %+v", fake.got.Messages[3])
	}
	if len(fake.got.Tools) != 1 || fake.got.Tools[0].Function.Parameters == nil {
		t.Errorf("expected tool with default parameters")
	}
	if fake.got.ResponseFormat != nil {
		t.Errorf("no response format expected without schema")
	}

	calls := resp.Content.FunctionCalls()
	if len(calls) != 1 || calls[0].ID != "call_9" {
		t.Errorf("unexpected calls %+v", calls)
	}
	if resp.Usage.TotalTokens != 12 || resp.ProviderName != "azure" {
		t.Errorf("unexpected response metadata %+v", resp)
	}
}

func TestOpenAIAdapter_ResponseSchema(t *testing.T) {
	fake := &fakeOpenAI{}
	a := NewOpenAIAdapter(fake, "azure")

	_, err := a.GenerateContent(context.Background(), &Request{
		Messages:           []Message{TextMessage(RoleUser, "show me the menu")},
		ResponseSchema:     map[string]interface{}{"type": "object"},
		ResponseSchemaName: "intent_classification",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rf := fake.got.ResponseFormat
	if rf == nil || rf.Type != openai.ChatCompletionResponseFormatTypeJSONSchema {
		t.Fatalf("expected json_schema response format, got %+v", rf)
	}
	if rf.JSONSchema.Name != "intent_classification" {
		t.Errorf("unexpected schema name %s", rf.JSONSchema.Name)
	}
}
