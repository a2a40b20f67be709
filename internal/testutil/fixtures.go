package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"theark/internal/models"
	"theark/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense stores an expense row for the given date and amount (in cents).
func CreateTestExpense(t *testing.T, db *gorm.DB, date time.Time, amountCents int64) *models.LedgerEntry {
	t.Helper()

	entry := &models.LedgerEntry{
		EntryID:     uuid.New(),
		Kind:        "expense",
		Date:        date,
		PeriodKey:   int(date.Month()) - 1,
		Category:    "Операционные расходы",
		Subcategory: "Аренда, коммунальные услуги",
		Note:        fmt.Sprintf("fixture %d", nextID()),
		AmountCents: amountCents,
	}
	entry.Title = entry.Subcategory + " — " + entry.Note
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return entry
}

// CreateTestIncome stores an income row for the given date and amount (in cents).
func CreateTestIncome(t *testing.T, db *gorm.DB, date time.Time, amountCents int64) *models.LedgerEntry {
	t.Helper()

	entry := &models.LedgerEntry{
		EntryID:     uuid.New(),
		Kind:        "income",
		Date:        date,
		PeriodKey:   int(date.Month()) - 1,
		Category:    "Доход по основной деятельности",
		Title:       "Доход по основной деятельности",
		AmountCents: amountCents,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return entry
}

// CreateTestRevokedToken stores a revocation for tokenID until expiresAt.
func CreateTestRevokedToken(t *testing.T, db *gorm.DB, tokenID string, expiresAt time.Time) *models.RevokedToken {
	t.Helper()

	row := &models.RevokedToken{TokenID: tokenID, ExpiresAt: expiresAt}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create revoked token: %v", err)
	}
	return row
}
