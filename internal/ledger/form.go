package ledger

import "time"

// ExpenseForm is the state of the new-expense form.
type ExpenseForm struct {
	Date        string          `json:"date"`
	Category    ExpenseCategory `json:"category"`
	Subcategory string          `json:"subcategory"`
	Note        string          `json:"note"`
	Amount      string          `json:"amount"`
}

// NewExpenseForm returns the form as it opens: today's date, the first
// expense category and that category's first subcategory.
func NewExpenseForm(now time.Time) ExpenseForm {
	first := expenseTaxonomy[0].Category
	return ExpenseForm{
		Date:        FormatDate(now),
		Category:    first,
		Subcategory: first.FirstSubcategory(),
	}
}

// SelectCategory switches the category and resets the subcategory to the
// first one listed under it.
func (f *ExpenseForm) SelectCategory(c ExpenseCategory) {
	f.Category = c
	f.Subcategory = c.FirstSubcategory()
}

// Input converts the form into an entry submission.
func (f ExpenseForm) Input() EntryInput {
	return EntryInput{
		Kind:        KindExpense,
		Date:        f.Date,
		Amount:      f.Amount,
		Category:    string(f.Category),
		Subcategory: f.Subcategory,
		Note:        f.Note,
	}
}

// IncomeForm is the state of the new-income form.
type IncomeForm struct {
	Date     string         `json:"date"`
	Category IncomeCategory `json:"category"`
	Note     string         `json:"note"`
	Amount   string         `json:"amount"`
}

// NewIncomeForm returns the form with today's date and the first income category.
func NewIncomeForm(now time.Time) IncomeForm {
	return IncomeForm{
		Date:     FormatDate(now),
		Category: incomeTaxonomy[0],
	}
}

// Input converts the form into an entry submission.
func (f IncomeForm) Input() EntryInput {
	return EntryInput{
		Kind:     KindIncome,
		Date:     f.Date,
		Amount:   f.Amount,
		Category: string(f.Category),
		Note:     f.Note,
	}
}
