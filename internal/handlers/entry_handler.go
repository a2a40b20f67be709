package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "theark/internal/errors"
	"theark/internal/ledger"
	"theark/internal/pagination"
	"theark/internal/services"
)

// EntryHandler handles ledger entry requests.
type EntryHandler struct {
	ledgerService services.LedgerServicer
	now           func() time.Time
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(ledgerService services.LedgerServicer, now func() time.Time) *EntryHandler {
	if now == nil {
		now = time.Now
	}
	return &EntryHandler{ledgerService: ledgerService, now: now}
}

// CreateEntryRequest represents the request payload for recording an entry.
// Date and amount are the raw text typed by the user.
type CreateEntryRequest struct {
	Kind        ledger.Kind `json:"kind" binding:"required,entry_kind"`
	Date        string      `json:"date" example:"01.01.2026"`
	Amount      string      `json:"amount" example:"1200,50"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	Note        string      `json:"note" binding:"max=500"`
}

// EntryResponse wraps a created entry.
type EntryResponse struct {
	Entry ledger.Entry `json:"entry"`
}

// SummaryResponse is the totals view of one month.
type SummaryResponse struct {
	Month     int                       `json:"month"`
	MonthName string                    `json:"month_name"`
	Summary   ledger.Summary            `json:"summary"`
	Formatted services.FormattedSummary `json:"formatted"`
}

// CreateEntry handles recording a new income or expense
// @Summary     Create an entry
// @Description Validate and record an income or expense entry
// @Tags        entries
// @Accept      json
// @Produce     json
// @Param       request body CreateEntryRequest true "Entry details"
// @Success     201 {object} EntryResponse "Entry created"
// @Failure     302 "Not signed in"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /app/api/entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	entry, err := h.ledgerService.CreateEntry(c.Request.Context(), getLogin(c), c.ClientIP(), ledger.EntryInput{
		Kind:        req.Kind,
		Date:        req.Date,
		Amount:      req.Amount,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Note:        req.Note,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, EntryResponse{Entry: *entry})
}

// ListEntries handles listing the entries of one month
// @Summary     List entries
// @Description Get a paginated list of the entries of one month, in the order they were recorded
// @Tags        entries
// @Produce     json
// @Param       month     query int false "Month, 0 = January (default current month)"
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[ledger.Entry] "Paginated entries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /app/api/entries [get]
func (h *EntryHandler) ListEntries(c *gin.Context) {
	month, err := parseMonth(c, h.now())
	if err != nil {
		_ = c.Error(err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		_ = c.Error(apperrors.Wrap(apperrors.ErrInvalidInput, err))
		return
	}

	result, err := h.ledgerService.GetPeriodEntries(c.Request.Context(), month, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary handles the totals of one month
// @Summary     Month summary
// @Description Get income, expense and net totals for one month
// @Tags        entries
// @Produce     json
// @Param       month query int false "Month, 0 = January (default current month)"
// @Success     200 {object} SummaryResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /app/api/summary [get]
func (h *EntryHandler) GetSummary(c *gin.Context) {
	month, err := parseMonth(c, h.now())
	if err != nil {
		_ = c.Error(err)
		return
	}

	summary, err := h.ledgerService.GetSummary(c.Request.Context(), month)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Month:     month,
		MonthName: ledger.MonthName(month),
		Summary:   summary,
		Formatted: services.FormattedSummary{
			Income:  ledger.FormatBYN(summary.Income),
			Expense: ledger.FormatBYN(summary.Expense),
			Net:     ledger.FormatBYN(summary.Net),
		},
	})
}
