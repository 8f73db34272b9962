package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind tells which variant an Output holds.
type Kind int

const (
	OutputText Kind = iota
	OutputStructured
)

func (k Kind) String() string {
	switch k {
	case OutputText:
		return "text"
	case OutputStructured:
		return "structured"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Output is a responder result: either free text or a JSON document.
// Build it with NewTextOutput or NewStructuredOutput.
type Output struct {
	kind Kind
	text string
	data json.RawMessage
}

func NewTextOutput(text string) Output {
	return Output{kind: OutputText, text: text}
}

// NewStructuredOutput validates raw and stores it in canonical form.
func NewStructuredOutput(raw []byte) (Output, error) {
	data, err := canonicalJSON(raw)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrInvalidStructuredOutput, err)
	}
	return Output{kind: OutputStructured, data: data}, nil
}

func (o Output) Kind() Kind {
	return o.kind
}

// Text returns the text of a text output, empty otherwise.
func (o Output) Text() string {
	return o.text
}

// Data returns the canonical JSON of a structured output, nil otherwise.
func (o Output) Data() json.RawMessage {
	return o.data
}

// Decode unmarshals a structured output into v.
func (o Output) Decode(v any) error {
	if o.kind != OutputStructured {
		return fmt.Errorf("%w: output is %s", ErrInvalidStructuredOutput, o.kind)
	}
	return json.Unmarshal(o.data, v)
}

// MarshalJSON writes a text output as a JSON string and a structured one as its document.
func (o Output) MarshalJSON() ([]byte, error) {
	if o.kind == OutputStructured {
		return o.data, nil
	}
	return json.Marshal(o.text)
}

// Serialize is the single textual form of an Output stored in the message log:
// text verbatim, structured outputs as compact canonical JSON.
func Serialize(o Output) string {
	if o.kind == OutputStructured {
		return string(o.data)
	}
	return o.text
}

// canonicalJSON re-encodes raw with sorted object keys and no insignificant whitespace.
func canonicalJSON(raw []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON document")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
