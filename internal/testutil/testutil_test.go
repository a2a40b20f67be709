package testutil_test

import (
	"testing"
	"time"

	"theark/internal/errors"
	"theark/internal/models"
	"theark/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"ledger_entries", "revoked_tokens", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_Isolated(t *testing.T) {
	first := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, first)
	second := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, second)

	testutil.CreateTestIncome(t, first, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 100)

	var count int64
	second.Model(&models.LedgerEntry{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated database, found %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	expense := testutil.CreateTestExpense(t, db, date, 120000)
	if expense.Seq == 0 {
		t.Fatal("expense should have a non-zero sequence")
	}
	if expense.PeriodKey != 2 {
		t.Errorf("expected period key 2, got %d", expense.PeriodKey)
	}

	income := testutil.CreateTestIncome(t, db, date, 540000)
	if income.Seq <= expense.Seq {
		t.Errorf("expected increasing sequence, got %d after %d", income.Seq, expense.Seq)
	}

	revoked := testutil.CreateTestRevokedToken(t, db, "jti-1", date)
	if revoked.ID == "" {
		t.Error("revoked token should have an id")
	}
}

func TestAssertAppError(t *testing.T) {
	testutil.AssertAppError(t, errors.ErrBadAmount, "BAD_AMOUNT")
	testutil.AssertAppError(t, errors.Wrap(errors.ErrBadDate, errors.ErrInvalidInput), "BAD_DATE")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertErrorIs(t *testing.T) {
	testutil.AssertErrorIs(t, errors.Wrap(errors.ErrBadAmount, nil), errors.ErrBadAmount)
	testutil.AssertErrorIs(t, errors.WithMessage(errors.ErrMissingCategory, "Выберите категорию доходов"), errors.ErrMissingCategory)
}
