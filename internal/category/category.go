package category

import (
	"time"

	"github.com/google/uuid"
)

// Type says whether a category groups income or expenses.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is a user-owned bucket that transactions are filed under.
// Names are matched case-sensitively by the SMS categorizer, so renaming
// one of the default categories opts it out of auto-categorization.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      Type
	Icon      string
	Color     string
	CreatedAt time.Time
}

// Defaults is the category set seeded for every new user.
var Defaults = []Category{
	{Name: "Food & Dining", Type: TypeExpense, Icon: "🍔", Color: "#FF5252"},
	{Name: "Transportation", Type: TypeExpense, Icon: "🚗", Color: "#FF6E40"},
	{Name: "Shopping", Type: TypeExpense, Icon: "🛍️", Color: "#FF4081"},
	{Name: "Entertainment", Type: TypeExpense, Icon: "🎬", Color: "#E040FB"},
	{Name: "Bills & Utilities", Type: TypeExpense, Icon: "📱", Color: "#7C4DFF"},
	{Name: "Health & Fitness", Type: TypeExpense, Icon: "⚕️", Color: "#536DFE"},
	{Name: "Airtime & Data", Type: TypeExpense, Icon: "📞", Color: "#00BCD4"},
	{Name: "Bank Charges", Type: TypeExpense, Icon: "🏦", Color: "#607D8B"},
	{Name: "Transfer", Type: TypeExpense, Icon: "💸", Color: "#9E9E9E"},
	{Name: "Education", Type: TypeExpense, Icon: "📚", Color: "#448AFF"},
	{Name: "Other Expenses", Type: TypeExpense, Icon: "📦", Color: "#FF5252"},
	{Name: "Salary", Type: TypeIncome, Icon: "💰", Color: "#4CAF50"},
	{Name: "Business", Type: TypeIncome, Icon: "💼", Color: "#8BC34A"},
	{Name: "Investment", Type: TypeIncome, Icon: "📈", Color: "#66BB6A"},
	{Name: "Gift", Type: TypeIncome, Icon: "🎁", Color: "#81C784"},
	{Name: "Other Income", Type: TypeIncome, Icon: "💵", Color: "#A5D6A7"},
}
