package handler

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/dispatch-backend-go/internal/middleware"
	"github.com/jengzang/dispatch-backend-go/internal/service"
	"github.com/jengzang/dispatch-backend-go/pkg/response"
)

// AdminHandler handles privileged dataset operations
type AdminHandler struct {
	dispatchService *service.DispatchService
	loadTimeout     time.Duration
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dispatchService *service.DispatchService, loadTimeout time.Duration) *AdminHandler {
	return &AdminHandler{
		dispatchService: dispatchService,
		loadTimeout:     loadTimeout,
	}
}

// Reload handles POST /api/v1/admin/reload
func (h *AdminHandler) Reload(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.loadTimeout)
	defer cancel()

	subject := "anonymous"
	if claims := middleware.GetClaims(c); claims != nil {
		subject = claims.Subject
	}
	log.Printf("Dataset reload requested by %s (request_id=%s)", subject, middleware.GetRequestID(c))

	counts, err := h.dispatchService.Reload(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, counts)
}
