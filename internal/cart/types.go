package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"restaurant-ordering-assistant/internal/menu"
)

// Line is one entry of a cart. Quantity is always at least 1.
type Line struct {
	Name     string
	Quantity int
	Price    float64
}

// Total returns Quantity * Price.
func (l Line) Total() float64 {
	return float64(l.Quantity) * l.Price
}

type lineJSON struct {
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Cart is an insertion-ordered set of lines keyed by item name.
// It is stored as a JSON object {name: {quantity, price}} and keeps key order across a round-trip.
type Cart struct {
	lines []Line
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// Find looks a line up by name, ignoring case.
func (c *Cart) Find(name string) (Line, bool) {
	if i := c.indexFold(name); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Add merges quantity units into the line with exactly item.Name, or appends a new
// line priced at item.Price. Quantities below 1 count as 1.
func (c *Cart) Add(item menu.Item, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i := c.indexExact(item.Name); i >= 0 {
		c.lines[i].Quantity += quantity
		return
	}
	c.lines = append(c.lines, Line{Name: item.Name, Quantity: quantity, Price: item.Price})
}

// Delete drops the line with exactly name.
func (c *Cart) Delete(name string) {
	if i := c.indexExact(name); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Decrement removes n units from the line with exactly name and returns what is left.
// The line is dropped once nothing remains.
func (c *Cart) Decrement(name string, n int) int {
	i := c.indexExact(name)
	if i < 0 {
		return 0
	}
	if n >= c.lines[i].Quantity {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return 0
	}
	c.lines[i].Quantity -= n
	return c.lines[i].Quantity
}

func (c *Cart) indexExact(name string) int {
	for i, l := range c.lines {
		if l.Name == name {
			return i
		}
	}
	return -1
}

func (c *Cart) indexFold(name string) int {
	for i, l := range c.lines {
		if strings.EqualFold(l.Name, name) {
			return i
		}
	}
	return -1
}

// MarshalJSON writes the cart as an object keyed by item name, in insertion order.
func (c Cart) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range c.lines {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(lineJSON{Quantity: l.Quantity, Price: l.Price})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by item name, keeping key order.
func (c *Cart) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		c.lines = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("cart: expected object, got %v", tok)
	}

	var lines []Line
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("cart: expected item name, got %v", tok)
		}

		var v lineJSON
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("cart: item %q: %w", name, err)
		}
		if v.Quantity < 1 {
			return fmt.Errorf("cart: item %q: quantity %d below 1", name, v.Quantity)
		}
		lines = append(lines, Line{Name: name, Quantity: v.Quantity, Price: v.Price})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	c.lines = lines
	return nil
}

// --- UseCase Inputs ---

type AddInput struct {
	Item     menu.Item
	Quantity int // values below 1 mean 1
}

type RemoveInput struct {
	Name     string
	Quantity *int // nil removes the whole line; below 1 is invalid
}

// --- UseCase Outputs ---

// LineItem is a cart line as presented to callers.
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

// Output is the result of a cart operation. Empty carts and unknown items are
// reported through Status, not as errors.
type Output struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Items   []LineItem `json:"items"`
	Total   float64    `json:"total"`
}
