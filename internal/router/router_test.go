package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/session"
	"restaurant-ordering-assistant/pkg/llmprovider"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

type fakeClassifier struct {
	out   agent.Output
	err   error
	tasks []string
}

func (f *fakeClassifier) Name() string { return ClassifierName }
func (f *fakeClassifier) Run(ctx context.Context, sessionID, task string) (agent.Output, error) {
	f.tasks = append(f.tasks, task)
	return f.out, f.err
}

func structured(t *testing.T, raw string) agent.Output {
	t.Helper()
	out, err := agent.NewStructuredOutput([]byte(raw))
	if err != nil {
		t.Fatalf("bad fixture %s: %v", raw, err)
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		out        agent.Output
		err        error
		wantIntent Intent
		wantErr    error
	}{
		{
			name:       "menu",
			out:        structured(t, `{"intent":"menu","reasoning":"asks for the menu"}`),
			wantIntent: IntentMenu,
		},
		{
			name:       "label normalized",
			out:        structured(t, `{"intent":"  CART ","reasoning":"adds items"}`),
			wantIntent: IntentCart,
		},
		{
			name:    "label outside the set",
			out:     structured(t, `{"intent":"checkout","reasoning":"?"}`),
			wantErr: ErrInvalidIntent,
		},
		{
			name:    "wrong shape",
			out:     structured(t, `{"intent":3}`),
			wantErr: ErrInvalidIntent,
		},
		{
			name:    "text reply",
			out:     agent.NewTextOutput("menu"),
			wantErr: ErrInvalidIntent,
		},
		{
			name:    "unparsable structured reply",
			err:     agent.ErrInvalidStructuredOutput,
			wantErr: ErrInvalidIntent,
		},
		{
			name:    "llm failure",
			err:     llmprovider.ErrAllProvidersFailed,
			wantErr: llmprovider.ErrAllProvidersFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&fakeClassifier{out: tt.out, err: tt.err}, pkgLog.NewNop())
			got, err := r.Classify(context.Background(), "s1", "query", nil)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("expected %s, got %s", tt.wantIntent, got.Intent)
			}
		})
	}
}

func TestClassify_LLMFailureIsNotInvalidIntent(t *testing.T) {
	r := New(&fakeClassifier{err: llmprovider.ErrAllProvidersFailed}, pkgLog.NewNop())
	_, err := r.Classify(context.Background(), "s1", "query", nil)
	if errors.Is(err, ErrInvalidIntent) {
		t.Errorf("provider failures must not look like invalid intents")
	}
}

func TestBuildPrompt(t *testing.T) {
	if got := BuildPrompt("show me the menu", nil); got != "Classify the intent of this request: show me the menu" {
		t.Errorf("unexpected prompt %q", got)
	}

	history := []session.Message{
		{Sender: "user", Message: "show me the menu"},
		{Sender: "menu_agent", Message: `{"items":[]}`},
	}
	want := "Conversation so far:\nuser: show me the menu\nmenu_agent: {\"items\":[]}\n\n" +
		"Classify the intent of this request: add 2 pizzas"
	if got := BuildPrompt("add 2 pizzas", history); got != want {
		t.Errorf("unexpected prompt:\n%s\nwant:\n%s", got, want)
	}
}

// keywordProvider stands in for an LLM: it labels the latest request by keyword.
type keywordProvider struct {
	requests []*llmprovider.Request
}

func (p *keywordProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.requests = append(p.requests, req)
	last := req.Messages[len(req.Messages)-1].Text()
	query := last[strings.LastIndex(last, ":")+1:]

	intent := "menu"
	for _, kw := range []string{"add", "remove", "cart", "clear"} {
		if strings.Contains(strings.ToLower(query), kw) {
			intent = "cart"
		}
	}
	return &llmprovider.Response{
		Content: llmprovider.TextMessage(llmprovider.RoleModel, `{"intent":"`+intent+`","reasoning":"keyword"}`),
	}, nil
}

func (p *keywordProvider) Name() string  { return "scripted" }
func (p *keywordProvider) Model() string { return "scripted-1" }

type noLog struct{}

func (noLog) AppendMessage(ctx context.Context, sessionID, sender, text string) error {
	return errors.New("classifier must not write the log")
}

func (noLog) ReadHistory(ctx context.Context, sessionID string) ([]session.Message, error) {
	return nil, errors.New("classifier must not read the log")
}

func TestClassifier_EndToEnd(t *testing.T) {
	provider := &keywordProvider{}
	manager := llmprovider.NewManager([]llmprovider.Provider{provider}, &llmprovider.Config{RetryAttempts: 1}, pkgLog.NewNop())
	r := New(NewClassifier(manager, noLog{}, pkgLog.NewNop()), pkgLog.NewNop())

	tests := map[string]Intent{
		"show me the menu": IntentMenu,
		"add 2 pizzas":     IntentCart,
	}
	for query, want := range tests {
		got, err := r.Classify(context.Background(), "s1", query, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", query, err)
		}
		if got.Intent != want {
			t.Errorf("%s: expected %s, got %s", query, want, got.Intent)
		}
	}

	req := provider.requests[0]
	if req.ResponseSchema == nil || len(req.Tools) != 0 {
		t.Errorf("classifier must request structured output without tools")
	}
	if req.SystemInstruction == nil || req.SystemInstruction.Text() != PromptClassifierSystem {
		t.Errorf("expected classifier system prompt")
	}
}
