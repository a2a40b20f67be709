package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"theark/internal/services"
)

// DashboardHandler serves the main page data.
type DashboardHandler struct {
	ledgerService services.LedgerServicer
	now           func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ledgerService services.LedgerServicer, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{ledgerService: ledgerService, now: now}
}

// DashboardResponse is the main page view.
type DashboardResponse struct {
	Login string `json:"login"`
	*services.Dashboard
}

// GetDashboard returns one month of the ledger
// @Summary     Dashboard
// @Description Entries and totals of one month, with month labels
// @Tags        dashboard
// @Produce     json
// @Param       month query int false "Month, 0 = January (default current month)"
// @Success     200 {object} DashboardResponse
// @Failure     302 "Not signed in"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /app [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	month, err := parseMonth(c, h.now())
	if err != nil {
		_ = c.Error(err)
		return
	}

	dashboard, err := h.ledgerService.GetDashboard(c.Request.Context(), month)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Login: getLogin(c), Dashboard: dashboard})
}

// Health reports that the server is up
// @Summary     Health check
// @Tags        system
// @Produce     json
// @Success     200 {object} map[string]string
// @Router      /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
