package ledger

import (
	"strings"
	"time"

	apperrors "theark/internal/errors"
)

// Kind is the direction of a ledger entry.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Valid reports whether k is a known entry kind.
func (k Kind) Valid() bool {
	return k == KindExpense || k == KindIncome
}

// Entry is one recorded income or expense. Entries are never mutated after
// creation.
type Entry struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Date        time.Time `json:"date"`
	PeriodKey   int       `json:"period_key"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Note        string    `json:"note,omitempty"`
	Title       string    `json:"title"`
	Amount      Money     `json:"amount"`
}

// EntryInput is the raw user submission for a new entry.
type EntryInput struct {
	Kind        Kind
	Date        string
	Amount      string
	Category    string
	Subcategory string
	Note        string
}

// buildEntry validates input and derives the period key and title. The id is
// left empty for the caller to assign.
func buildEntry(in EntryInput) (Entry, error) {
	if !in.Kind.Valid() {
		return Entry{}, apperrors.ErrInvalidKind
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return Entry{}, err
	}

	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		Kind:      in.Kind,
		Date:      date,
		PeriodKey: PeriodKey(date),
		Note:      strings.TrimSpace(in.Note),
		Amount:    amount,
	}

	var label string
	switch in.Kind {
	case KindExpense:
		category := ExpenseCategory(in.Category)
		if in.Category == "" || !category.Valid() {
			return Entry{}, apperrors.ErrMissingCategory
		}
		if in.Subcategory == "" || !category.HasSubcategory(in.Subcategory) {
			return Entry{}, apperrors.ErrMissingSubcategory
		}
		entry.Category = in.Category
		entry.Subcategory = in.Subcategory
		label = in.Subcategory
	case KindIncome:
		category := IncomeCategory(in.Category)
		if in.Category == "" || !category.Valid() {
			return Entry{}, apperrors.WithMessage(apperrors.ErrMissingCategory, "Выберите категорию доходов")
		}
		entry.Category = in.Category
		label = in.Category
	}

	entry.Title = displayTitle(label, entry.Note)
	return entry, nil
}

func displayTitle(label, note string) string {
	if note == "" {
		return label
	}
	return label + " — " + note
}
