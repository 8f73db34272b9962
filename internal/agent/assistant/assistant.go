package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/pkg/llmprovider"
)

var errEmptyResponse = errors.New("empty LLM response")

// Run answers task for sessionID. Tools see the session through agent.SessionIDFromContext.
func (a *Assistant) Run(ctx context.Context, sessionID, task string) (agent.Output, error) {
	ctx = agent.WithSessionID(ctx, sessionID)

	req := &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, task)},
		Temperature: a.cfg.Temperature,
	}
	if a.cfg.SystemPrompt != "" {
		sys := llmprovider.TextMessage("", a.cfg.SystemPrompt)
		req.SystemInstruction = &sys
	}

	hasTools := a.cfg.Tools.Len() > 0
	if hasTools {
		req.Tools = a.cfg.Tools.ToFunctionDefinitions()
	} else if a.cfg.ResponseSchema != nil {
		req.ResponseSchema = a.cfg.ResponseSchema
		req.ResponseSchemaName = a.cfg.SchemaName
	}

	for step := 0; step < a.cfg.MaxSteps; step++ {
		a.l.Debugf(ctx, LogMsgAgentStep, a.cfg.Name, step+1, a.cfg.MaxSteps)

		// 1. Reason
		resp, err := a.llm.GenerateContent(ctx, req)
		if err != nil {
			a.l.Errorf(ctx, "%s: %s step %d: %v", LogPrefixRun, a.cfg.Name, step+1, err)
			return agent.Output{}, fmt.Errorf("%s: step %d: %w", a.cfg.Name, step+1, err)
		}
		if len(resp.Content.Parts) == 0 {
			return agent.Output{}, fmt.Errorf("%s: step %d: %w", a.cfg.Name, step+1, errEmptyResponse)
		}

		calls := resp.Content.FunctionCalls()
		if len(calls) == 0 {
			a.l.Infof(ctx, LogMsgAgentFinished, a.cfg.Name, step+1)
			return a.finish(ctx, req, resp.Content, hasTools)
		}

		// 2. Act
		results := make([]llmprovider.Part, 0, len(calls))
		for _, call := range calls {
			results = append(results, llmprovider.Part{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: a.execute(ctx, call),
				},
			})
		}

		// 3. Observe
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: llmprovider.RoleModel, Parts: resp.Content.Parts},
			llmprovider.Message{Role: llmprovider.RoleFunction, Parts: results},
		)
	}

	a.l.Warnf(ctx, LogMsgAgentMaxSteps, a.cfg.Name, a.cfg.MaxSteps)
	return agent.NewTextOutput(MsgMaxStepsExceeded), nil
}

func (a *Assistant) execute(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	a.l.Infof(ctx, LogMsgAgentCallingTool, a.cfg.Name, call.Name, call.Args)

	tool, ok := a.cfg.Tools.Get(call.Name)
	if !ok {
		a.l.Errorf(ctx, "%s: tool %s not found", LogPrefixRun, call.Name)
		return map[string]string{"error": ErrMsgToolNotFound}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		a.l.Errorf(ctx, LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}

// finish turns the model's final message into an Output. When tools were offered
// the schema could not be sent alongside them, so one more call without tools asks for it.
func (a *Assistant) finish(ctx context.Context, req *llmprovider.Request, final llmprovider.Message, hasTools bool) (agent.Output, error) {
	if a.cfg.ResponseSchema == nil {
		return agent.NewTextOutput(final.Text()), nil
	}

	text := final.Text()
	if hasTools {
		var err error
		text, err = a.reflect(ctx, req, final)
		if err != nil {
			return agent.Output{}, err
		}
	}

	out, err := agent.NewStructuredOutput([]byte(stripCodeFence(text)))
	if err != nil {
		a.l.Errorf(ctx, "%s: %s: %v", LogPrefixRun, a.cfg.Name, err)
		return agent.Output{}, fmt.Errorf("%s: %w", a.cfg.Name, err)
	}
	return out, nil
}

func (a *Assistant) reflect(ctx context.Context, req *llmprovider.Request, final llmprovider.Message) (string, error) {
	messages := make([]llmprovider.Message, 0, len(req.Messages)+2)
	messages = append(messages, req.Messages...)
	messages = append(messages,
		llmprovider.Message{Role: llmprovider.RoleModel, Parts: final.Parts},
		llmprovider.TextMessage(llmprovider.RoleUser, reflectPrompt),
	)

	resp, err := a.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction:  req.SystemInstruction,
		Messages:           messages,
		Temperature:        req.Temperature,
		ResponseSchema:     a.cfg.ResponseSchema,
		ResponseSchemaName: a.cfg.SchemaName,
	})
	if err != nil {
		a.l.Errorf(ctx, "%s: %s: %v", LogPrefixReflect, a.cfg.Name, err)
		return "", fmt.Errorf("%s: structured answer: %w", a.cfg.Name, err)
	}
	return resp.Content.Text(), nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
