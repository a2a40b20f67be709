package ledger

// ExpenseCategory is one of the fixed top-level expense categories.
type ExpenseCategory string

// IncomeCategory is one of the fixed income categories.
type IncomeCategory string

const (
	ExpenseOperating      ExpenseCategory = "Операционные расходы"
	ExpenseMarketing      ExpenseCategory = "Маркетинг и реклама"
	ExpenseDevelopment    ExpenseCategory = "Разработка и производство"
	ExpenseTaxes          ExpenseCategory = "Налоги"
	ExpenseFinancial      ExpenseCategory = "Финансовые расходы"
	ExpenseAdministrative ExpenseCategory = "Административные расходы"
	ExpenseCapital        ExpenseCategory = "Капитальные затраты"
	ExpenseInvestment     ExpenseCategory = "Инвестиционные расходы"
	ExpenseOther          ExpenseCategory = "Прочие расходы"
)

const (
	IncomeCoreBusiness IncomeCategory = "Доход по основной деятельности"
	IncomeInvestment   IncomeCategory = "Инвестиционных доход"
	IncomeRent         IncomeCategory = "Доход от аренды"
	IncomeDeposit      IncomeCategory = "Проценты по депозитам"
	IncomePenalties    IncomeCategory = "Доход (штрафы и компенсации)"
	IncomeAssetSale    IncomeCategory = "Одноразовый доход от продажи активов или оборудования"
	IncomeProjects     IncomeCategory = "Доход от проектных услуг"
)

// ExpenseGroup is an expense category with its ordered subcategories.
type ExpenseGroup struct {
	Category      ExpenseCategory `json:"category"`
	Subcategories []string        `json:"subcategories"`
}

var expenseTaxonomy = []ExpenseGroup{
	{ExpenseOperating, []string{
		"Зарплаты и компенсации",
		"Аренда, коммунальные услуги",
		"Расходы на транспорт",
		"Канцелярия и офисные материалы",
		"Расходы на IT",
	}},
	{ExpenseMarketing, []string{"Реклама", "Мероприятия"}},
	{ExpenseDevelopment, []string{
		"Производственные расходы (закупка материалов/инструментов)",
	}},
	{ExpenseTaxes, []string{"Налог на прибыль", "НДС", "Страховые и пенсионные взносы"}},
	{ExpenseFinancial, []string{
		"Проценты по кредитам",
		"Оплата основного долга (кредит)",
		"Перевод на другой счет",
		"Расходы на валютные операции",
	}},
	{ExpenseAdministrative, []string{"Премии", "Мат. помощь"}},
	{ExpenseCapital, []string{
		"Покупка оборудования и недвижимости",
		"Строительство и модернизация",
		"Амортизация основных средств",
	}},
	{ExpenseInvestment, []string{"Депозит", "Покупка акций/облигаций"}},
	{ExpenseOther, []string{
		"Пожертвования и благотворительность",
		"Компенсации и возвраты",
		"Прочие нестандартные расходы",
	}},
}

var incomeTaxonomy = []IncomeCategory{
	IncomeCoreBusiness,
	IncomeInvestment,
	IncomeRent,
	IncomeDeposit,
	IncomePenalties,
	IncomeAssetSale,
	IncomeProjects,
}

// Taxonomy is the serializable view of both category tables.
type Taxonomy struct {
	Expense []ExpenseGroup   `json:"expense"`
	Income  []IncomeCategory `json:"income"`
}

// CurrentTaxonomy returns a copy of the compiled-in category tables.
func CurrentTaxonomy() Taxonomy {
	return Taxonomy{Expense: ExpenseGroups(), Income: IncomeCategories()}
}

// ExpenseGroups returns the expense categories in display order.
func ExpenseGroups() []ExpenseGroup {
	out := make([]ExpenseGroup, len(expenseTaxonomy))
	for i, g := range expenseTaxonomy {
		out[i] = ExpenseGroup{
			Category:      g.Category,
			Subcategories: append([]string(nil), g.Subcategories...),
		}
	}
	return out
}

// IncomeCategories returns the income categories in display order.
func IncomeCategories() []IncomeCategory {
	return append([]IncomeCategory(nil), incomeTaxonomy...)
}

// Subcategories returns the ordered subcategories of c, or nil when c is not
// an expense category.
func (c ExpenseCategory) Subcategories() []string {
	for _, g := range expenseTaxonomy {
		if g.Category == c {
			return append([]string(nil), g.Subcategories...)
		}
	}
	return nil
}

// Valid reports whether c belongs to the expense taxonomy.
func (c ExpenseCategory) Valid() bool {
	for _, g := range expenseTaxonomy {
		if g.Category == c {
			return true
		}
	}
	return false
}

// FirstSubcategory returns the subcategory selected by default for c.
func (c ExpenseCategory) FirstSubcategory() string {
	for _, g := range expenseTaxonomy {
		if g.Category == c {
			return g.Subcategories[0]
		}
	}
	return ""
}

// HasSubcategory reports whether sub is listed under c.
func (c ExpenseCategory) HasSubcategory(sub string) bool {
	for _, g := range expenseTaxonomy {
		if g.Category != c {
			continue
		}
		for _, s := range g.Subcategories {
			if s == sub {
				return true
			}
		}
	}
	return false
}

// Valid reports whether c belongs to the income taxonomy.
func (c IncomeCategory) Valid() bool {
	for _, ic := range incomeTaxonomy {
		if ic == c {
			return true
		}
	}
	return false
}
