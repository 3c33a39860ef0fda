package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/handler/httperr"
)

// ErrorHandler answers requests that ended without a body using the error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicError(c); ok {
			c.JSON(resp.Status, resp)
			return
		}

		status := c.Writer.Status()
		if status == http.StatusOK {
			status = http.StatusInternalServerError
		}
		if status < http.StatusBadRequest {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(status, envelope(status, http.StatusText(status)))
	}
}

func lastPublicError(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if e := c.Errors[i]; e.IsType(gin.ErrorTypePublic) {
			if resp, ok := e.Meta.(httperr.Response); ok {
				return resp, true
			}
		}
	}
	return httperr.Response{}, false
}

func envelope(status int, msg string) httperr.Response {
	resp := httperr.Response{Status: status}
	resp.Error.Message = msg
	return resp
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, envelope(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}
