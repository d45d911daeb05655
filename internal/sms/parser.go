package sms

import (
	"regexp"
	"strings"

	"github.com/cashkelli/cashkelli/internal/transaction"
)

// Category names the parser and keyword table point at. They must match the
// seeded default category names exactly.
const (
	catOtherIncome   = "Other Income"
	catOtherExpenses = "Other Expenses"
	catTransfer      = "Transfer"
	catAirtime       = "Airtime & Data"
)

var (
	reMpesaReceived = regexp.MustCompile(`(?i)([A-Z0-9]+)\s+Confirmed\..*?You have received\s+Ksh([\d,]+\.\d{2})\s+from\s+(.*?)\s+on`)
	reMpesaSent     = regexp.MustCompile(`(?i)([A-Z0-9]+)\s+Confirmed\..*?Ksh([\d,]+\.\d{2})\s+sent to\s+(.*?)\s+on`)
	reMpesaAirtime  = regexp.MustCompile(`(?i)([A-Z0-9]+)\s+Confirmed\..*?You bought\s+Ksh([\d,]+\.\d{2})\s+of airtime`)
	reMpesaWithdraw = regexp.MustCompile(`(?i)([A-Z0-9]+)\s+Confirmed\..*?Ksh([\d,]+\.\d{2})\s+withdrawn from`)
	reBankCredit    = regexp.MustCompile(`(?i)(?:Acc|Account|A/C).*?(?:credited|deposited|credit).*?(?:KES|Ksh|KSH)?\s*([\d,]+\.?\d*)`)
	reBankDebit     = regexp.MustCompile(`(?i)(?:Acc|Account|A/C).*?(?:debited|withdrawn|debit).*?(?:KES|Ksh|KSH)?\s*([\d,]+\.?\d*)`)
)

type pattern struct {
	name string
	// providerOnly patterns are skipped unless the message carries the
	// mobile-money marker.
	providerOnly bool
	re           *regexp.Regexp
	extract      func(sender string, m []string) (ParsedEvent, bool)
}

// patterns is the ordered matcher table; the first structural match wins.
// Provider templates come before bank alerts because they carry confirmation
// codes and precise wording the generic patterns cannot extract. Within a
// family, order breaks ties between templates sharing words like "sent" and
// "withdrawn".
var patterns = []pattern{
	{name: "mpesa received", providerOnly: true, re: reMpesaReceived, extract: extractMpesaReceived},
	{name: "mpesa sent", providerOnly: true, re: reMpesaSent, extract: extractMpesaSent},
	{name: "mpesa airtime", providerOnly: true, re: reMpesaAirtime, extract: extractMpesaAirtime},
	{name: "mpesa withdraw", providerOnly: true, re: reMpesaWithdraw, extract: extractMpesaWithdraw},
	{name: "bank credit", re: reBankCredit, extract: extractBankCredit},
	{name: "bank debit", re: reBankDebit, extract: extractBankDebit},
}

// Parse classifies one SMS into a financial event. Pure and deterministic;
// the second return is false for anything that is not a recognizable money
// message.
func Parse(body, sender string) (ParsedEvent, bool) {
	provider := isMobileMoney(body, sender)

	for _, p := range patterns {
		if p.providerOnly && !provider {
			continue
		}

		m := p.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}

		ev, ok := p.extract(sender, m)
		if !ok {
			// Structural match with a garbage amount token; let a later
			// pattern have a go.
			continue
		}

		return ev, true
	}

	return ParsedEvent{}, false
}

// isMobileMoney gates the provider pattern family. Short-code senders vary
// between carriers, so the in-body brand marker is accepted too.
func isMobileMoney(body, sender string) bool {
	return strings.Contains(strings.ToLower(sender), "mpesa") || strings.Contains(body, "M-PESA")
}

func extractMpesaReceived(_ string, m []string) (ParsedEvent, bool) {
	cents, err := parseAmountCents(m[2])
	if err != nil {
		return ParsedEvent{}, false
	}

	return ParsedEvent{
		Kind:              transaction.TypeIncome,
		Amount:            cents,
		Description:       "Received from " + m[3],
		ProviderRef:       m[1],
		SuggestedCategory: catOtherIncome,
	}, true
}

func extractMpesaSent(_ string, m []string) (ParsedEvent, bool) {
	cents, err := parseAmountCents(m[2])
	if err != nil {
		return ParsedEvent{}, false
	}

	return ParsedEvent{
		Kind:              transaction.TypeExpense,
		Amount:            cents,
		Description:       "Sent to " + m[3],
		ProviderRef:       m[1],
		SuggestedCategory: catTransfer,
	}, true
}

func extractMpesaAirtime(_ string, m []string) (ParsedEvent, bool) {
	cents, err := parseAmountCents(m[2])
	if err != nil {
		return ParsedEvent{}, false
	}

	return ParsedEvent{
		Kind:              transaction.TypeExpense,
		Amount:            cents,
		Description:       "Airtime purchase",
		ProviderRef:       m[1],
		SuggestedCategory: catAirtime,
	}, true
}

func extractMpesaWithdraw(_ string, m []string) (ParsedEvent, bool) {
	cents, err := parseAmountCents(m[2])
	if err != nil {
		return ParsedEvent{}, false
	}

	return ParsedEvent{
		Kind:              transaction.TypeExpense,
		Amount:            cents,
		Description:       "Cash withdrawal",
		ProviderRef:       m[1],
		SuggestedCategory: catTransfer,
	}, true
}

func extractBankCredit(sender string, m []string) (ParsedEvent, bool) {
	cents, err := parseAmountCents(m[1])
	if err != nil {
		return ParsedEvent{}, false
	}

	return ParsedEvent{
		Kind:              transaction.TypeIncome,
		Amount:            cents,
		Description:       "Bank deposit from " + sender,
		SuggestedCategory: catOtherIncome,
	}, true
}

func extractBankDebit(_ string, m []string) (ParsedEvent, bool) {
	cents, err := parseAmountCents(m[1])
	if err != nil {
		return ParsedEvent{}, false
	}

	// Generic debits carry no counterparty, so there is nothing to suggest
	// a category from; the user resolves these by hand.
	return ParsedEvent{
		Kind:                transaction.TypeExpense,
		Amount:              cents,
		Description:         "Bank transaction",
		NeedsManualCategory: true,
	}, true
}
