package test

import (
	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/session"
)

// ClassifyRequest represents a classification request
type ClassifyRequest struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"sessionId"`
}

// ClassifyResponse represents a classification response
type ClassifyResponse struct {
	Success   bool              `json:"success"`
	Intent    string            `json:"intent,omitempty"`
	Reasoning string            `json:"reasoning,omitempty"`
	Query     string            `json:"query"`
	SessionID string            `json:"sessionId,omitempty"`
	History   []session.Message `json:"history,omitempty"`
	Error     string            `json:"error,omitempty"`
	Details   string            `json:"details,omitempty"`
}

// HistoryResponse lists a session's message log
type HistoryResponse struct {
	SessionID string            `json:"sessionId"`
	Messages  []session.Message `json:"messages"`
}

// CartResponse shows a session's cart
type CartResponse struct {
	SessionID string      `json:"sessionId"`
	Cart      cart.Output `json:"cart"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
