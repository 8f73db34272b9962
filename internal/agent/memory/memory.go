// Package memory gives a responder the session's message log as context
// and records its replies there.
package memory

import (
	"context"
	"fmt"
	"strings"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/session"
	"restaurant-ordering-assistant/internal/session/repository"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

const logPrefixRun = "internal.agent.memory.Run"

// Option configures a wrapper built by Wrap.
type Option func(*wrapper)

// WithoutRecording passes the task through untouched and never reads or writes the log.
func WithoutRecording() Option {
	return func(w *wrapper) {
		w.record = false
	}
}

// WithLogger sets the logger used to report store failures.
func WithLogger(l pkgLog.Logger) Option {
	return func(w *wrapper) {
		w.l = l
	}
}

type wrapper struct {
	inner  agent.Responder
	repo   repository.MessageRepository
	record bool
	l      pkgLog.Logger
}

// Wrap returns a responder that prefixes the task with the session transcript
// and appends the inner responder's output to the log under its name.
func Wrap(inner agent.Responder, repo repository.MessageRepository, opts ...Option) agent.Responder {
	w := &wrapper{
		inner:  inner,
		repo:   repo,
		record: true,
		l:      pkgLog.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *wrapper) Name() string {
	return w.inner.Name()
}

func (w *wrapper) Run(ctx context.Context, sessionID, task string) (agent.Output, error) {
	if !w.record {
		return w.inner.Run(ctx, sessionID, task)
	}

	history, err := w.repo.ReadHistory(ctx, sessionID)
	if err != nil {
		w.l.Errorf(ctx, "%s: read history: %v", logPrefixRun, err)
		return agent.Output{}, fmt.Errorf("%s: read history: %w", w.inner.Name(), err)
	}

	out, err := w.inner.Run(ctx, sessionID, BuildPrompt(sessionID, history, task))
	if err != nil {
		return agent.Output{}, err
	}

	if err := w.repo.AppendMessage(ctx, sessionID, w.inner.Name(), agent.Serialize(out)); err != nil {
		w.l.Errorf(ctx, "%s: append message: %v", logPrefixRun, err)
		return agent.Output{}, fmt.Errorf("%s: append message: %w", w.inner.Name(), err)
	}
	return out, nil
}

// BuildPrompt renders the task together with the session's earlier turns, oldest first.
func BuildPrompt(sessionID string, history []session.Message, task string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session ID: %s\n\n", sessionID)
	if len(history) > 0 {
		b.WriteString("Previous conversation:\n")
		b.WriteString(Transcript(history))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Current request: %s", task)
	return b.String()
}

// Transcript renders history as "sender: message" lines.
func Transcript(history []session.Message) string {
	lines := make([]string, len(history))
	for i, m := range history {
		lines[i] = m.Sender + ": " + m.Message
	}
	return strings.Join(lines, "\n")
}
