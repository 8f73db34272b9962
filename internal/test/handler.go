package test

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ordering-assistant/internal/cart"
	"restaurant-ordering-assistant/internal/router"
	"restaurant-ordering-assistant/internal/session"
	"restaurant-ordering-assistant/internal/session/repository"
	pkgLog "restaurant-ordering-assistant/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	router   router.Router
	sessions repository.MessageRepository
	carts    cart.UseCase
}

// HandleClassify runs the intent classifier alone, without touching the message log
// @Summary Test intent classification
// @Description Classify a query as menu or cart using the session history, without logging it
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Query to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 422 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var history []session.Message
	if req.SessionID != "" {
		var err error
		history, err = h.sessions.ReadHistory(ctx, req.SessionID)
		if err != nil {
			h.l.Errorf(ctx, "internal.test.HandleClassify: read history: %v", err)
			c.JSON(http.StatusInternalServerError, ClassifyResponse{
				Success: false,
				Query:   req.Query,
				Error:   "Session store unavailable",
				Details: err.Error(),
			})
			return
		}
	}

	out, err := h.router.Classify(ctx, req.SessionID, req.Query, history)
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleClassify: Router classification failed: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, router.ErrInvalidIntent) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, ClassifyResponse{
			Success: false,
			Query:   req.Query,
			Error:   "Router classification failed",
			Details: err.Error(),
		})
		return
	}

	h.l.Infof(ctx, "internal.test.HandleClassify: query=%q intent=%s", req.Query, out.Intent)

	c.JSON(http.StatusOK, ClassifyResponse{
		Success:   true,
		Intent:    string(out.Intent),
		Reasoning: out.Reasoning,
		Query:     req.Query,
		SessionID: req.SessionID,
		History:   history,
	})
}

// HandleHistory returns the message log of a session
// @Summary Session history
// @Description List the logged messages of a session in append order
// @Tags test
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} HistoryResponse
// @Router /test/sessions/{id}/history [get]
func (h *handler) HandleHistory(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	messages, err := h.sessions.ReadHistory(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleHistory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session store unavailable", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{SessionID: id, Messages: messages})
}

// HandleCart returns the cart of a session
// @Summary Session cart
// @Description Show the cart lines and total of a session
// @Tags test
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} CartResponse
// @Router /test/sessions/{id}/cart [get]
func (h *handler) HandleCart(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	out, err := h.carts.Show(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "internal.test.HandleCart: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session store unavailable", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CartResponse{SessionID: id, Cart: out})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
