package session

import "encoding/json"

// SenderUser is the sender recorded for turns typed by the customer.
const SenderUser = "user"

// Message is one entry of a session's message log.
type Message struct {
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// UserData is the per-session key/value record. Values are kept as raw JSON
// so keys owned by other features round-trip untouched.
type UserData map[string]json.RawMessage

// Clone returns a shallow copy of d. A nil receiver yields an empty map.
func (d UserData) Clone() UserData {
	out := make(UserData, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
