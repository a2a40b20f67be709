package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "theark/internal/errors"
	"theark/internal/ledger"
	"theark/internal/middleware"
)

// getLogin returns the login the access gate stored for this request, or an
// empty string outside the gate.
func getLogin(c *gin.Context) string {
	return c.GetString(middleware.LoginKey)
}

// MonthQuery is the optional month selector of the ledger views.
type MonthQuery struct {
	Month *int `form:"month" binding:"omitempty,period_key"`
}

// parseMonth reads the month query parameter (0 = January). When absent it
// defaults to the current month of now.
func parseMonth(c *gin.Context, now time.Time) (int, error) {
	var q MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Некорректный месяц")
	}
	if q.Month == nil {
		return ledger.CurrentPeriod(now), nil
	}
	return *q.Month, nil
}

// ErrorDetail represents the inner error object in an error response. Handlers
// attach errors with c.Error and middleware.ErrorHandler writes the body.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is the body of plain acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
