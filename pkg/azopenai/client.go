package azopenai

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// IClient is the subset of the OpenAI chat API the service uses.
type IClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	Model() string
	Flavor() string
}

type client struct {
	api    *openai.Client
	model  string
	flavor string
}

// New creates a chat client for an Azure OpenAI deployment or any OpenAI-compatible endpoint.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		api:    openai.NewClientWithConfig(cfg.clientConfig()),
		model:  cfg.Model,
		flavor: cfg.Flavor,
	}, nil
}

// CreateChatCompletion fills the model when empty and calls the chat completions API.
func (c *client) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return openai.ChatCompletionResponse{}, fmt.Errorf("azopenai: %w", err)
	}
	return resp, nil
}

func (c *client) Model() string {
	return c.model
}

func (c *client) Flavor() string {
	return c.flavor
}

func marshalMap(m map[string]interface{}) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
