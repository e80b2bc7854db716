package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int32
		want     string
	}{
		{"zero decimal currency", "130650", 0, "130650"},
		{"zero decimal rounds half up", "1306.5", 0, "1307"},
		{"zero decimal rounds down", "1306.49", 0, "1306"},
		{"cents", "372.00", 2, "37200"},
		{"cents half up", "10.005", 2, "1001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(decimal.RequireFromString(tt.amount), tt.decimals))
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	v, err := FromMinorUnits("37200", 2)
	require.NoError(t, err)
	assert.True(t, v.Equal(decimal.NewFromInt(372)))

	_, err = FromMinorUnits("12.5", 0)
	assert.Error(t, err)

	_, err = FromMinorUnits("", 0)
	assert.Error(t, err)

	_, err = FromMinorUnits("abc", 0)
	assert.Error(t, err)
}

func TestCurrencyUtils_Rounding(t *testing.T) {
	u := NewCurrencyUtils(0)

	assert.Equal(t, "2.35", u.RoundHalfUp(decimal.RequireFromString("2.345")).StringFixed(2))
	assert.Equal(t, "2.34", u.BankersRound(decimal.RequireFromString("2.345")).StringFixed(2))
	assert.Equal(t, "USD 372.00", u.Format(decimal.NewFromInt(372), "USD"))
	assert.Equal(t, "1300", u.LocalMinor(decimal.NewFromInt(1300)))
	assert.Equal(t, "37200", u.SettlementMinor(decimal.NewFromInt(372)))
}
