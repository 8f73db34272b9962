package tools

import (
	"context"
	"fmt"
	"math"
	"strings"

	"restaurant-ordering-assistant/internal/agent"
)

// sessionID returns the session the current tool call belongs to.
func sessionID(ctx context.Context) (string, error) {
	id, ok := agent.SessionIDFromContext(ctx)
	if !ok {
		return "", agent.ErrMissingSession
	}
	return id, nil
}

func stringParam(params map[string]interface{}, key string) (string, error) {
	v, ok := params[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s parameter is required", agent.ErrInvalidToolArgument, key)
	}
	return strings.TrimSpace(v), nil
}

// intParam reads an optional whole number. JSON numbers arrive as float64.
func intParam(params map[string]interface{}, key string) (int, bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false, fmt.Errorf("%w: %s must be a whole number", agent.ErrInvalidToolArgument, key)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number", agent.ErrInvalidToolArgument, key)
	}
}

func floatParam(params map[string]interface{}, key string) (float64, bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number", agent.ErrInvalidToolArgument, key)
	}
}
