package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNew(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without API key")
	}

	c, err := New(Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != DefaultModel || c.baseURL != DefaultBaseURL {
		t.Errorf("defaults not applied: %s %s", c.Model(), c.baseURL)
	}
}

func TestGenerateContent(t *testing.T) {
	var got Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{
			"id": "c1",
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"intent\":\"menu\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 2, "total_tokens": 7}
		}`))
	}))
	defer ts.Close()

	t.Run("success", func(t *testing.T) {
		c, _ := New(Config{APIKey: "secret", BaseURL: ts.URL})
		req := &Request{
			Messages:       []Message{{Role: "user", Content: "hi"}},
			ResponseFormat: &ResponseFormat{Type: ResponseFormatJSON},
		}

		resp, err := c.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Choices[0].Message.Content != `{"intent":"menu"}` {
			t.Errorf("unexpected content %q", resp.Choices[0].Message.Content)
		}
		if got.Model != DefaultModel {
			t.Errorf("expected default model in request, got %q", got.Model)
		}
		if got.ResponseFormat == nil || got.ResponseFormat.Type != ResponseFormatJSON {
			t.Errorf("expected json response format, got %+v", got.ResponseFormat)
		}
		if req.Model != "" {
			t.Errorf("caller request must not be mutated")
		}
	})

	t.Run("api error", func(t *testing.T) {
		c, _ := New(Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := c.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: "user", Content: "hi"}}})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
