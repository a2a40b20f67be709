package ledger

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestTaxonomyShape(t *testing.T) {
	tax := CurrentTaxonomy()
	if len(tax.Expense) != 9 {
		t.Fatalf("expected 9 expense categories, got %d", len(tax.Expense))
	}
	if len(tax.Income) != 7 {
		t.Fatalf("expected 7 income categories, got %d", len(tax.Income))
	}

	for _, g := range tax.Expense {
		if !g.Category.Valid() {
			t.Errorf("%s should be valid", g.Category)
		}
		if n := len(g.Subcategories); n < 1 || n > 5 {
			t.Errorf("%s: expected 1..5 subcategories, got %d", g.Category, n)
		}
		for _, sub := range g.Subcategories {
			if !g.Category.HasSubcategory(sub) {
				t.Errorf("%s should contain %s", g.Category, sub)
			}
		}
	}
	for _, c := range tax.Income {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
}

func TestTaxonomyCopiesAreIsolated(t *testing.T) {
	groups := ExpenseGroups()
	groups[0].Subcategories[0] = "changed"
	if got := ExpenseOperating.FirstSubcategory(); got != "Зарплаты и компенсации" {
		t.Errorf("taxonomy mutated through ExpenseGroups: %q", got)
	}

	subs := ExpenseTaxes.Subcategories()
	subs[0] = "changed"
	want := []string{"Налог на прибыль", "НДС", "Страховые и пенсионные взносы"}
	if got := ExpenseTaxes.Subcategories(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCategoryLookups(t *testing.T) {
	unknown := ExpenseCategory("Еда")
	if unknown.Valid() {
		t.Error("unknown expense category should be invalid")
	}
	if unknown.Subcategories() != nil {
		t.Error("unknown expense category should have no subcategories")
	}
	if unknown.FirstSubcategory() != "" {
		t.Error("unknown expense category should have no first subcategory")
	}
	if ExpenseMarketing.HasSubcategory("НДС") {
		t.Error("НДС is not a marketing subcategory")
	}
	if IncomeCategory(ExpenseTaxes).Valid() {
		t.Error("an expense category is not an income category")
	}
	if got := ExpenseInvestment.FirstSubcategory(); got != "Депозит" {
		t.Errorf("expected Депозит, got %q", got)
	}
}

func TestTaxonomyJSON(t *testing.T) {
	data, err := json.Marshal(CurrentTaxonomy())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Expense []struct {
			Category      string   `json:"category"`
			Subcategories []string `json:"subcategories"`
		} `json:"expense"`
		Income []string `json:"income"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Expense[0].Category != "Операционные расходы" {
		t.Errorf("unexpected first expense category %q", decoded.Expense[0].Category)
	}
	if decoded.Income[6] != "Доход от проектных услуг" {
		t.Errorf("unexpected last income category %q", decoded.Income[6])
	}
}

func TestExpenseFormSelectCategoryResetsSubcategory(t *testing.T) {
	now := time.Date(2026, time.March, 7, 15, 0, 0, 0, time.UTC)
	form := NewExpenseForm(now)

	if form.Date != "07.03.2026" {
		t.Errorf("expected today's date, got %q", form.Date)
	}
	if form.Category != ExpenseOperating || form.Subcategory != "Зарплаты и компенсации" {
		t.Errorf("unexpected defaults %s / %s", form.Category, form.Subcategory)
	}

	for _, g := range ExpenseGroups() {
		form.Subcategory = g.Subcategories[len(g.Subcategories)-1]
		form.SelectCategory(g.Category)
		if form.Subcategory != g.Subcategories[0] {
			t.Errorf("%s: expected subcategory reset to %q, got %q", g.Category, g.Subcategories[0], form.Subcategory)
		}
	}
}

func TestFormInputs(t *testing.T) {
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)

	expense := NewExpenseForm(now)
	expense.SelectCategory(ExpenseTaxes)
	expense.Amount = "100"
	entry, err := buildEntry(expense.Input())
	if err != nil {
		t.Fatalf("expense form: %v", err)
	}
	if entry.Title != "Налог на прибыль" {
		t.Errorf("unexpected title %q", entry.Title)
	}

	income := NewIncomeForm(now)
	if income.Date != "02.01.2026" || income.Category != IncomeCoreBusiness {
		t.Errorf("unexpected income defaults %s / %s", income.Date, income.Category)
	}
	income.Amount = "1,5"
	income.Note = "Продажи"
	entry, err = buildEntry(income.Input())
	if err != nil {
		t.Fatalf("income form: %v", err)
	}
	if entry.Title != "Доход по основной деятельности — Продажи" {
		t.Errorf("unexpected title %q", entry.Title)
	}
	if entry.Amount != 150 {
		t.Errorf("expected 150 cents, got %d", entry.Amount)
	}
}
