package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

// writeError maps service errors to HTTP responses
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuery):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotLoaded):
		response.ServiceUnavailable(c, "Dataset is not loaded yet")
	default:
		_ = c.Error(err)
		response.InternalError(c, err.Error())
	}
}
