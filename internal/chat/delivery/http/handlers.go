package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ordering-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the ordering assistant
// @Description Classifies the query as a menu or cart request and answers it. The response is text, or a menu object for menu requests.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User query and session id"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessQuery(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuery: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}
