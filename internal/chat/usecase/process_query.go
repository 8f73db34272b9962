package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant-ordering-assistant/internal/chat"
	"restaurant-ordering-assistant/internal/router"
	"restaurant-ordering-assistant/internal/session"
)

const logPrefixProcessQuery = "internal.chat.usecase.ProcessQuery"

// ProcessQuery runs the five steps of a turn in order and stops at the first failure.
func (uc *implUseCase) ProcessQuery(ctx context.Context, input chat.ProcessQueryInput) (chat.ProcessQueryOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return chat.ProcessQueryOutput{}, chat.ErrEmptyQuery
	}
	if strings.TrimSpace(input.SessionID) == "" {
		return chat.ProcessQueryOutput{}, chat.ErrEmptySession
	}

	// 1. Log the user turn
	if err := uc.repo.AppendMessage(ctx, input.SessionID, session.SenderUser, input.Query); err != nil {
		uc.l.Errorf(ctx, "%s: append user message: %v", logPrefixProcessQuery, err)
		return chat.ProcessQueryOutput{}, fmt.Errorf("append user message: %w", err)
	}

	// 2. Classify
	history, err := uc.repo.ReadHistory(ctx, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: read history: %v", logPrefixProcessQuery, err)
		return chat.ProcessQueryOutput{}, fmt.Errorf("read history: %w", err)
	}

	intent, err := uc.router.Classify(ctx, input.SessionID, input.Query, history)
	if err != nil {
		if errors.Is(err, router.ErrInvalidIntent) {
			return chat.ProcessQueryOutput{}, fmt.Errorf("%w: %w", chat.ErrInvalidIntent, err)
		}
		return chat.ProcessQueryOutput{}, fmt.Errorf("classify: %w", err)
	}

	// 3. Route
	responder, ok := uc.responders[intent.Intent]
	if !ok {
		return chat.ProcessQueryOutput{}, fmt.Errorf("%w: %s", chat.ErrNoResponder, intent.Intent)
	}
	uc.l.Infof(ctx, "%s: routing session %s to %s", logPrefixProcessQuery, input.SessionID, responder.Name())

	// 4. Respond; the wrapper records the reply
	out, err := responder.Run(ctx, input.SessionID, input.Query)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %s: %v", logPrefixProcessQuery, responder.Name(), err)
		return chat.ProcessQueryOutput{}, fmt.Errorf("%s: %w", responder.Name(), err)
	}

	// 5. Done
	return chat.ProcessQueryOutput{
		Response:  out,
		Intent:    intent.Intent,
		Reasoning: intent.Reasoning,
		Responder: responder.Name(),
	}, nil
}
