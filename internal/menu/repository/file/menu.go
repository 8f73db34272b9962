package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"restaurant-ordering-assistant/internal/menu"
)

// ListMenuItems parses the catalog file. Both {"items": [...]} and a bare array are accepted.
func (r *implRepository) ListMenuItems(ctx context.Context) ([]menu.Item, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMenuItems"), err)
		return nil, fmt.Errorf("%w: %v", menu.ErrMenuUnavailable, err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var items []menu.Item
		if err := json.Unmarshal(raw, &items); err != nil {
			r.l.Errorf(ctx, "%s: decode: %v", r.dsn("ListMenuItems"), err)
			return nil, fmt.Errorf("%w: %v", menu.ErrMenuUnavailable, err)
		}
		return items, nil
	}

	var m menu.Menu
	if err := json.Unmarshal(raw, &m); err != nil {
		r.l.Errorf(ctx, "%s: decode: %v", r.dsn("ListMenuItems"), err)
		return nil, fmt.Errorf("%w: %v", menu.ErrMenuUnavailable, err)
	}
	return m.Items, nil
}
