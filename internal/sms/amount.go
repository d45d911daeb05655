package sms

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmountCents parses a currency token like "1,500.00" into cents.
// Thousands separators are stripped first.
func parseAmountCents(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
