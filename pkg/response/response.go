package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error body with the given status code.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResp{Error: err.Error()})
}

// BadRequest sends 400 with the error text.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err)
}

// NotFound sends 404 with the error text.
func NotFound(c *gin.Context, err error) {
	Error(c, http.StatusNotFound, err)
}

// TooManyRequests aborts with 429, a retry_after field and the Retry-After header.
func TooManyRequests(c *gin.Context, err error, retryAfterSeconds int) {
	if retryAfterSeconds < 1 {
		retryAfterSeconds = 1
	}
	c.Header(HeaderRetryAfter, strconv.Itoa(retryAfterSeconds))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{
		Error:      err.Error(),
		RetryAfter: retryAfterSeconds,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// ServiceUnavailable sends 503 with the error text.
func ServiceUnavailable(c *gin.Context, err error) {
	Error(c, http.StatusServiceUnavailable, err)
}
