package handler

import (
	"net/http"

	"child-wallet/internal/adapter/http/dto"
	"child-wallet/internal/core/ports"
	"child-wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventStream upgrades a request into a live feed of one child's events.
type EventStream interface {
	Serve(w http.ResponseWriter, r *http.Request, childID string, originPatterns []string)
}

// DashboardHandler handles the read-only overview endpoints and the event feed.
type DashboardHandler struct {
	walletSvc      ports.WalletService
	events         EventStream
	originPatterns []string
}

// NewDashboardHandler creates a new DashboardHandler. events may be nil,
// in which case the feed answers 404.
func NewDashboardHandler(walletSvc ports.WalletService, events EventStream, originPatterns []string) *DashboardHandler {
	return &DashboardHandler{walletSvc: walletSvc, events: events, originPatterns: originPatterns}
}

// Report handles GET /api/v1/children/:childID/report.
func (h *DashboardHandler) Report(c *gin.Context) {
	report, err := h.walletSvc.GetComprehensiveReport(c.Request.Context(), childID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Spendable handles GET /api/v1/children/:childID/spendable.
func (h *DashboardHandler) Spendable(c *gin.Context) {
	id := childID(c)
	ok, err := h.walletSvc.IsOldEnoughToSpend(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SpendableResponse{ChildID: id, IsOldEnoughToSpend: ok})
}

// Events handles GET /api/v1/children/:childID/events (WebSocket).
func (h *DashboardHandler) Events(c *gin.Context) {
	if h.events == nil {
		c.Status(http.StatusNotFound)
		return
	}
	h.events.Serve(c.Writer, c.Request, childID(c), h.originPatterns)
}
