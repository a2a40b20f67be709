// Package ledger records dated income and expense entries against a fixed
// category taxonomy and computes per-month totals.
package ledger

import (
	"context"

	apperrors "theark/internal/errors"
	"theark/internal/uuid"
)

// Summary is the derived totals view of a set of entries.
type Summary struct {
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
	Net     Money `json:"net"`
}

// Ledger validates new entries and appends them to its store.
type Ledger struct {
	store Store
	newID func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the UUIDv7 entry id generator.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// New creates a Ledger over store.
func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{store: store, newID: uuid.New}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateEntry validates in, assigns a fresh id and appends the entry.
// Validation failures are returned as *errors.AppError values.
func (l *Ledger) CreateEntry(ctx context.Context, in EntryInput) (*Entry, error) {
	entry, err := buildEntry(in)
	if err != nil {
		return nil, err
	}
	entry.ID = l.newID()

	if err := l.store.Append(ctx, entry); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &entry, nil
}

// Entries returns every entry in insertion order.
func (l *Ledger) Entries(ctx context.Context) ([]Entry, error) {
	entries, err := l.store.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}

// Period returns the entries of one period key together with their summary.
func (l *Ledger) Period(ctx context.Context, periodKey int) ([]Entry, Summary, error) {
	entries, err := l.Entries(ctx)
	if err != nil {
		return nil, Summary{}, err
	}
	selected := SelectPeriod(entries, periodKey)
	return selected, Summarize(selected), nil
}

// SelectPeriod keeps the entries whose period key equals periodKey, in their
// insertion order.
func SelectPeriod(entries []Entry, periodKey int) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.PeriodKey == periodKey {
			out = append(out, e)
		}
	}
	return out
}

// Summarize totals income and expense amounts; net is income minus expense.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Kind {
		case KindIncome:
			s.Income += e.Amount
		case KindExpense:
			s.Expense += e.Amount
		}
	}
	s.Net = s.Income - s.Expense
	return s
}

// SeedDemo appends the two sample entries shown on a fresh dashboard.
func (l *Ledger) SeedDemo(ctx context.Context) error {
	samples := []EntryInput{
		{
			Kind:        KindExpense,
			Date:        "01.01.2026",
			Amount:      "1200",
			Category:    string(ExpenseOperating),
			Subcategory: "Аренда, коммунальные услуги",
			Note:        "Офис",
		},
		{
			Kind:     KindIncome,
			Date:     "05.01.2026",
			Amount:   "5400",
			Category: string(IncomeCoreBusiness),
			Note:     "Продажи",
		},
	}
	for _, in := range samples {
		if _, err := l.CreateEntry(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
