package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/twprice/internal/domain/dto"
)

// ErrorHandler renders the last error attached with c.Error when the handler
// did not write a response itself.
//
// A dto.ErrorResponse is sent as-is; any other error is wrapped into a generic
// 500 "internal server error" body.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	var resp dto.ErrorResponse
	if !errors.As(err, &resp) {
		resp = dto.NewErrorResponse("internal server error", err)
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with the given status.
// The error is also recorded on the context so RequestLogger can count it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
