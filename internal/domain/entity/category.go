// Package entity defines the core business entities for the domain layer.
package entity

// CategoryID identifies a transaction category. The set of well-known
// categories is closed, but the type tolerates arbitrary strings so that
// user-entered categories flow through aggregation without special casing.
type CategoryID string

// Expense categories.
const (
	CategoryFood          CategoryID = "food"
	CategoryGrocery       CategoryID = "grocery"
	CategoryTransport     CategoryID = "transport"
	CategoryEntertainment CategoryID = "entertainment"
	CategoryShopping      CategoryID = "shopping"
	CategoryHousing       CategoryID = "housing"
	CategoryUtilities     CategoryID = "utilities"
	CategoryHealthcare    CategoryID = "healthcare"
	CategoryEducation     CategoryID = "education"
	CategoryPersonal      CategoryID = "personal"
	CategoryTravel        CategoryID = "travel"
	CategorySubscription  CategoryID = "subscription"
	CategoryOtherExpense  CategoryID = "other_expense"
)

// Income categories.
const (
	CategorySalary      CategoryID = "salary"
	CategoryFreelance   CategoryID = "freelance"
	CategoryGift        CategoryID = "gift"
	CategoryInvestment  CategoryID = "investment"
	CategoryRefund      CategoryID = "refund"
	CategoryOtherIncome CategoryID = "other_income"
)

// CategoryKind distinguishes income categories from expense categories.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
)

// incomeCategories is the membership set for income-type categories.
var incomeCategories = map[CategoryID]bool{
	CategorySalary:      true,
	CategoryFreelance:   true,
	CategoryGift:        true,
	CategoryInvestment:  true,
	CategoryRefund:      true,
	CategoryOtherIncome: true,
}

// knownCategories is the membership set for the closed enumeration.
var knownCategories = map[CategoryID]bool{
	CategoryFood:          true,
	CategoryGrocery:       true,
	CategoryTransport:     true,
	CategoryEntertainment: true,
	CategoryShopping:      true,
	CategoryHousing:       true,
	CategoryUtilities:     true,
	CategoryHealthcare:    true,
	CategoryEducation:     true,
	CategoryPersonal:      true,
	CategoryTravel:        true,
	CategorySubscription:  true,
	CategoryOtherExpense:  true,
	CategorySalary:        true,
	CategoryFreelance:     true,
	CategoryGift:          true,
	CategoryInvestment:    true,
	CategoryRefund:        true,
	CategoryOtherIncome:   true,
}

// IsKnown reports whether the category belongs to the closed enumeration.
func (c CategoryID) IsKnown() bool {
	return knownCategories[c]
}

// Kind returns the kind of the category. Unknown categories are treated as
// expense-type, matching how uncategorized spending is grouped.
func (c CategoryID) Kind() CategoryKind {
	if incomeCategories[c] {
		return CategoryKindIncome
	}
	return CategoryKindExpense
}

// categoryIcons maps well-known categories to their display icons.
var categoryIcons = map[CategoryID]string{
	CategoryFood:          "🍔",
	CategoryGrocery:       "🛒",
	CategoryTransport:     "🚗",
	CategoryEntertainment: "🎬",
	CategoryShopping:      "🛍️",
	CategoryHousing:       "🏠",
	CategoryUtilities:     "💡",
	CategoryHealthcare:    "🏥",
	CategoryEducation:     "📚",
	CategoryPersonal:      "💇",
	CategoryTravel:        "✈️",
	CategorySubscription:  "📱",
	CategoryOtherExpense:  "📋",
	CategorySalary:        "💰",
	CategoryFreelance:     "💼",
	CategoryGift:          "🎁",
	CategoryInvestment:    "📈",
	CategoryRefund:        "💵",
	CategoryOtherIncome:   "💵",
}

// Icon returns the display icon for the category. Unknown categories fall
// back to the generic document icon so lookups never fail for user-entered
// category names.
func (c CategoryID) Icon() string {
	if icon, ok := categoryIcons[c]; ok {
		return icon
	}
	return "📋"
}
