package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/agent/memory"
	"restaurant-ordering-assistant/internal/session"
)

// Classify determines the intent of query given the session history.
// Any reply other than a menu or cart intent fails with ErrInvalidIntent.
func (r *SemanticRouter) Classify(ctx context.Context, sessionID, query string, history []session.Message) (Output, error) {
	out, err := r.classifier.Run(ctx, sessionID, BuildPrompt(query, history))
	if err != nil {
		if errors.Is(err, agent.ErrInvalidStructuredOutput) {
			r.l.Warnf(ctx, "%s: %v", LogPrefixClassify, err)
			return Output{}, fmt.Errorf("%w: %v", ErrInvalidIntent, err)
		}
		r.l.Errorf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgClassifierFailed, err)
		return Output{}, fmt.Errorf("%s: %w", ErrMsgClassifierFailed, err)
	}

	if out.Kind() != agent.OutputStructured {
		r.l.Warnf(ctx, "%s: unstructured reply %q", LogPrefixClassify, out.Text())
		return Output{}, fmt.Errorf("%w: unstructured reply", ErrInvalidIntent)
	}

	var result Output
	if err := out.Decode(&result); err != nil {
		r.l.Warnf(ctx, "%s: decode: %v", LogPrefixClassify, err)
		return Output{}, fmt.Errorf("%w: %v", ErrInvalidIntent, err)
	}

	result.Intent = Intent(strings.ToLower(strings.TrimSpace(string(result.Intent))))
	if !result.Intent.Valid() {
		r.l.Warnf(ctx, "%s: unknown intent %q", LogPrefixClassify, result.Intent)
		return Output{}, fmt.Errorf("%w: %q", ErrInvalidIntent, result.Intent)
	}

	r.l.Infof(ctx, "%s: Classified as %s (%s)", LogPrefixClassify, result.Intent, result.Reasoning)
	return result, nil
}

// BuildPrompt puts the conversation so far ahead of the classification request.
func BuildPrompt(query string, history []session.Message) string {
	prompt := fmt.Sprintf(PromptCurrentQuery, query)
	if len(history) == 0 {
		return prompt
	}
	return PromptHistoryPrefix + memory.Transcript(history) + "\n\n" + prompt
}
