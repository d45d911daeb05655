package sms_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashkelli/cashkelli/internal/category"
	"github.com/cashkelli/cashkelli/internal/sms"
	"github.com/cashkelli/cashkelli/internal/transaction"
)

func cat(name string, typ category.Type) category.Category {
	return category.Category{ID: uuid.New(), Name: name, Type: typ}
}

func TestResolveCategory_Hint(t *testing.T) {
	airtime := cat("Airtime & Data", category.TypeExpense)
	cats := []category.Category{cat("Food & Dining", category.TypeExpense), airtime}

	ev := sms.ParsedEvent{
		Kind:              transaction.TypeExpense,
		Description:       "Airtime purchase",
		SuggestedCategory: "Airtime & Data",
	}

	id, ok := sms.ResolveCategory(ev, cats)
	require.True(t, ok)
	assert.Equal(t, airtime.ID, id)
}

func TestResolveCategory_HintIsCaseSensitive(t *testing.T) {
	cats := []category.Category{cat("airtime & data", category.TypeExpense)}

	ev := sms.ParsedEvent{
		Kind:              transaction.TypeExpense,
		Description:       "some purchase",
		SuggestedCategory: "Airtime & Data",
	}

	_, ok := sms.ResolveCategory(ev, cats)
	assert.False(t, ok)
}

func TestResolveCategory_Keyword(t *testing.T) {
	transport := cat("Transportation", category.TypeExpense)
	cats := []category.Category{cat("Shopping", category.TypeExpense), transport}

	ev := sms.ParsedEvent{
		Kind:        transaction.TypeExpense,
		Description: "Sent to UBER KENYA",
	}

	id, ok := sms.ResolveCategory(ev, cats)
	require.True(t, ok)
	assert.Equal(t, transport.ID, id)
}

func TestResolveCategory_KeywordTableOrderBreaksTies(t *testing.T) {
	shopping := cat("Shopping", category.TypeExpense)
	transfer := cat("Transfer", category.TypeExpense)
	cats := []category.Category{transfer, shopping}

	// "store" hits Shopping, "sent to" hits Transfer; Shopping is declared
	// earlier in the keyword table, so it wins regardless of the order of
	// the user's categories.
	ev := sms.ParsedEvent{
		Kind:        transaction.TypeExpense,
		Description: "Sent to SOME STORE NAIROBI",
	}

	id, ok := sms.ResolveCategory(ev, cats)
	require.True(t, ok)
	assert.Equal(t, shopping.ID, id)
}

func TestResolveCategory_FallbackBuckets(t *testing.T) {
	otherIncome := cat("Other Income", category.TypeIncome)
	otherExpenses := cat("Other Expenses", category.TypeExpense)
	cats := []category.Category{otherIncome, otherExpenses}

	incomeEv := sms.ParsedEvent{Kind: transaction.TypeIncome, Description: "Mystery credit"}
	id, ok := sms.ResolveCategory(incomeEv, cats)
	require.True(t, ok)
	assert.Equal(t, otherIncome.ID, id)

	expenseEv := sms.ParsedEvent{Kind: transaction.TypeExpense, Description: "Mystery debit"}
	id, ok = sms.ResolveCategory(expenseEv, cats)
	require.True(t, ok)
	assert.Equal(t, otherExpenses.ID, id)
}

func TestResolveCategory_NoMatch(t *testing.T) {
	cats := []category.Category{cat("Salary", category.TypeIncome)}

	ev := sms.ParsedEvent{Kind: transaction.TypeExpense, Description: "Mystery debit"}

	_, ok := sms.ResolveCategory(ev, cats)
	assert.False(t, ok)
}

func TestResolveCategory_EmptyCategorySet(t *testing.T) {
	ev := sms.ParsedEvent{
		Kind:              transaction.TypeExpense,
		Description:       "Airtime purchase",
		SuggestedCategory: "Airtime & Data",
	}

	_, ok := sms.ResolveCategory(ev, nil)
	assert.False(t, ok)
}
