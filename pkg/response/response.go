package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "restaurant-ordering-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends error response with status code and message.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}

// HTTPError answers with the status carried by err when it is a pkg/errors.HTTPError,
// and with a 500 otherwise.
func HTTPError(c *gin.Context, err error) {
	httpErr, ok := pkgErrors.AsHTTPError(err)
	if !ok {
		InternalError(c, err)
		return
	}
	if httpErr.StatusCode >= http.StatusInternalServerError {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: InternalServerErrorCode,
			Message:   DefaultErrorMessage,
		})
		return
	}
	c.JSON(httpErr.StatusCode, Resp{
		ErrorCode: httpErr.StatusCode,
		Message:   httpErr.Message,
	})
}
