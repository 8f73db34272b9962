package http

import (
	"strings"

	"restaurant-ordering-assistant/internal/agent"
	"restaurant-ordering-assistant/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Query     string `json:"query"     binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return chat.ErrEmptyQuery
	}
	if strings.TrimSpace(r.SessionID) == "" {
		return chat.ErrEmptySession
	}
	return nil
}

func (r chatReq) toInput() chat.ProcessQueryInput {
	return chat.ProcessQueryInput{
		Query:     r.Query,
		SessionID: r.SessionID,
	}
}

// --- Response DTOs ---

// chatResp carries either the reply text or the structured reply object.
type chatResp struct {
	Response agent.Output `json:"response" swaggertype:"object"`
}

func (h *handler) newChatResp(out chat.ProcessQueryOutput) chatResp {
	return chatResp{Response: out.Response}
}
