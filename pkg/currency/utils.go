package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SettlementDecimals is the precision of internal settlement-currency amounts.
const SettlementDecimals int32 = 2

type CurrencyUtils struct {
	localDecimals int32
}

func NewCurrencyUtils(localDecimals int32) *CurrencyUtils {
	if localDecimals < 0 {
		localDecimals = 0
	}
	return &CurrencyUtils{localDecimals: localDecimals}
}

func (u *CurrencyUtils) LocalDecimals() int32 {
	return u.localDecimals
}

// RoundHalfUp rounds a value to the settlement minor unit, ties away from zero.
func (u *CurrencyUtils) RoundHalfUp(value decimal.Decimal) decimal.Decimal {
	return value.Round(SettlementDecimals)
}

// BankersRound applies banker's rounding to the settlement minor unit.
func (u *CurrencyUtils) BankersRound(value decimal.Decimal) decimal.Decimal {
	return value.RoundBank(SettlementDecimals)
}

// ToMinorUnits renders an amount as an integer string in the smallest unit of a
// currency with the given number of decimals, rounding half-up.
func ToMinorUnits(amount decimal.Decimal, decimals int32) string {
	return amount.Shift(decimals).Round(0).String()
}

// FromMinorUnits parses a gateway minor-unit string back into a decimal amount.
func FromMinorUnits(minor string, decimals int32) (decimal.Decimal, error) {
	minor = strings.TrimSpace(minor)
	if minor == "" {
		return decimal.Zero, fmt.Errorf("empty minor-unit amount")
	}
	v, err := decimal.NewFromString(minor)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid minor-unit amount %q: %w", minor, err)
	}
	if !v.Equal(v.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("minor-unit amount %q is not an integer", minor)
	}
	return v.Shift(-decimals), nil
}

// LocalMinor renders an amount in the configured local currency's minor unit.
func (u *CurrencyUtils) LocalMinor(amount decimal.Decimal) string {
	return ToMinorUnits(amount, u.localDecimals)
}

// SettlementMinor renders a settlement-currency amount in cents.
func (u *CurrencyUtils) SettlementMinor(amount decimal.Decimal) string {
	return ToMinorUnits(amount, SettlementDecimals)
}

// Format renders an amount for display, e.g. "USD 372.00".
func (u *CurrencyUtils) Format(amount decimal.Decimal, code string) string {
	return fmt.Sprintf("%s %s", code, amount.StringFixed(SettlementDecimals))
}
