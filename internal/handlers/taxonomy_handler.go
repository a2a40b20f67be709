package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "theark/internal/errors"
	"theark/internal/ledger"
)

// TaxonomyHandler serves the category taxonomy and the entry form defaults.
type TaxonomyHandler struct {
	now func() time.Time
}

// NewTaxonomyHandler creates a new TaxonomyHandler.
func NewTaxonomyHandler(now func() time.Time) *TaxonomyHandler {
	if now == nil {
		now = time.Now
	}
	return &TaxonomyHandler{now: now}
}

// GetTaxonomy returns the category taxonomy
// @Summary     Category taxonomy
// @Description Expense categories with their subcategories, and income categories
// @Tags        taxonomy
// @Produce     json
// @Success     200 {object} ledger.Taxonomy
// @Router      /app/api/taxonomy [get]
func (h *TaxonomyHandler) GetTaxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, ledger.CurrentTaxonomy())
}

// ExpenseForm returns the defaults of the new-expense form
// @Summary     Expense form
// @Description Form state as it opens; passing category switches to it and resets the subcategory
// @Tags        taxonomy
// @Produce     json
// @Param       category query string false "Selected expense category"
// @Success     200 {object} ledger.ExpenseForm
// @Failure     400 {object} ErrorResponse "Unknown category"
// @Router      /app/api/forms/expense [get]
func (h *TaxonomyHandler) ExpenseForm(c *gin.Context) {
	form := ledger.NewExpenseForm(h.now())

	if raw := c.Query("category"); raw != "" {
		category := ledger.ExpenseCategory(raw)
		if !category.Valid() {
			_ = c.Error(apperrors.ErrMissingCategory)
			return
		}
		form.SelectCategory(category)
	}

	c.JSON(http.StatusOK, form)
}

// IncomeForm returns the defaults of the new-income form
// @Summary     Income form
// @Description Form state as it opens
// @Tags        taxonomy
// @Produce     json
// @Success     200 {object} ledger.IncomeForm
// @Router      /app/api/forms/income [get]
func (h *TaxonomyHandler) IncomeForm(c *gin.Context) {
	c.JSON(http.StatusOK, ledger.NewIncomeForm(h.now()))
}
