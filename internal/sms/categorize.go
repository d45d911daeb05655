package sms

import (
	"strings"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/category"
	"github.com/cashkelli/cashkelli/internal/transaction"
)

// keywordRule maps a category name to trigger words. Declaration order is
// the tie-break when a description matches words from more than one rule.
type keywordRule struct {
	category string
	keywords []string
}

var keywordRules = []keywordRule{
	{catAirtime, []string{"airtime", "data bundle", "bundles", "safaricom", "airtel"}},
	{"Food & Dining", []string{"restaurant", "food", "cafe", "coffee", "dinner", "lunch", "breakfast", "pizza", "burger"}},
	{"Transportation", []string{"uber", "bolt", "taxi", "fuel", "petrol", "parking", "matatu"}},
	{"Shopping", []string{"shop", "store", "market", "mall", "purchase", "buy"}},
	{"Entertainment", []string{"movie", "cinema", "netflix", "spotify", "game", "concert"}},
	{"Bills & Utilities", []string{"electricity", "water", "kplc", "zuku", "internet", "rent", "bill"}},
	{"Health & Fitness", []string{"hospital", "pharmacy", "doctor", "gym", "medical", "clinic"}},
	{"Bank Charges", []string{"bank charges", "transaction fee", "service charge", "withdrawal fee"}},
	{catTransfer, []string{"transfer", "send money", "sent to"}},
}

// ResolveCategory picks a category for a parsed event from the user's set:
// parser hint first, then the keyword table against the description, then
// the catch-all bucket for the event's kind. Category names are matched
// exactly and case-sensitively; keyword lookups are case-insensitive
// substring checks. Returns false when nothing fits, in which case the
// caller flags the transaction for manual categorization.
func ResolveCategory(ev ParsedEvent, cats []category.Category) (uuid.UUID, bool) {
	if ev.SuggestedCategory != "" {
		if id, ok := findCategory(cats, ev.SuggestedCategory); ok {
			return id, true
		}
	}

	desc := strings.ToLower(ev.Description)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if !strings.Contains(desc, kw) {
				continue
			}

			if id, ok := findCategory(cats, rule.category); ok {
				return id, true
			}
		}
	}

	bucket := catOtherExpenses
	if ev.Kind == transaction.TypeIncome {
		bucket = catOtherIncome
	}

	return findCategory(cats, bucket)
}

func findCategory(cats []category.Category, name string) (uuid.UUID, bool) {
	for _, c := range cats {
		if c.Name == name {
			return c.ID, true
		}
	}

	return uuid.Nil, false
}
