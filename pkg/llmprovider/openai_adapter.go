package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"restaurant-ordering-assistant/pkg/azopenai"
)

const defaultSchemaName = "response"

// OpenAIAdapter adapts pkg/azopenai (Azure deployments and OpenAI-compatible endpoints) to Provider
type OpenAIAdapter struct {
	client azopenai.IClient
	name   string
}

// NewOpenAIAdapter creates a new adapter reported under name
func NewOpenAIAdapter(client azopenai.IClient, name string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	oaReq := openai.ChatCompletionRequest{
		Messages:    convertToOpenAIMessages(req.SystemInstruction, req.Messages),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	if len(req.Tools) > 0 {
		oaReq.Tools = convertToOpenAITools(req.Tools)
	}

	if req.ResponseSchema != nil {
		name := req.ResponseSchemaName
		if name == "" {
			name = defaultSchemaName
		}
		oaReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   name,
				Schema: azopenai.JSONSchema(req.ResponseSchema),
			},
		}
	}

	resp, err := a.client.CreateChatCompletion(ctx, oaReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.name, classifyError(err))
	}

	return convertFromOpenAIResponse(resp, a.name), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model or deployment name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(system *Message, msgs []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(msgs)+1)
	if system != nil {
		out = append(out, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system.Text(),
		})
	}

	for _, msg := range msgs {
		switch msg.Role {
		case RoleFunction:
			for _, p := range msg.Parts {
				if p.FunctionResponse == nil {
					continue
				}
				payload, _ := json.Marshal(p.FunctionResponse.Response)
				out = append(out, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					Name:       p.FunctionResponse.Name,
					ToolCallID: callID(p.FunctionResponse.ID, p.FunctionResponse.Name),
					Content:    string(payload),
				})
			}
		case RoleModel:
			m := openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: msg.Text(),
			}
			for _, fc := range msg.FunctionCalls() {
				args, _ := json.Marshal(fc.Args)
				m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
					ID:   callID(fc.ID, fc.Name),
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      fc.Name,
						Arguments: string(args),
					},
				})
			}
			out = append(out, m)
		default:
			out = append(out, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: msg.Text(),
			})
		}
	}
	return out
}

func convertToOpenAITools(tools []Tool) []openai.Tool {
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		params := t.Parameters
		if params == nil {
			params = map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
		}
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		}
	}
	return out
}

func convertFromOpenAIResponse(resp openai.ChatCompletionResponse, provider string) *Response {
	out := &Response{
		Content:      Message{Role: RoleModel, Parts: []Part{}},
		ProviderName: provider,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}

	msg := resp.Choices[0].Message
	if msg.Content != "" {
		out.Content.Parts = append(out.Content.Parts, Part{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		out.Content.Parts = append(out.Content.Parts, Part{FunctionCall: &FunctionCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: decodeArgs(tc.Function.Arguments),
		}})
	}
	return out
}
