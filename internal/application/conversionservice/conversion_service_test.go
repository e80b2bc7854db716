package conversionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuncanbit/bss/internal/domain"
	mock_interfaces "github.com/tuncanbit/bss/internal/domain/interfaces/mocks"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/logger"
)

var settlement = config.SettlementConfig{Currency: "USD", LocalCurrency: "RWF", LocalDecimals: 0}

func TestToLocal(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		direction domain.ConversionDirection
		wantLocal string
		wantRate  string
	}{
		{"deposit applies markup", "100", domain.ConversionDeposit, "130650", "1306.5"},
		{"payout applies discount", "100", domain.ConversionPayout, "126750", "1267.5"},
		{"fractional deposit rounds half up", "0.01", domain.ConversionDeposit, "13", "1306.5"},
		{"zero amount", "0", domain.ConversionDeposit, "0", "1306.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rates := mock_interfaces.NewMockExchangeRateProvider(ctrl)
			rates.EXPECT().GetBaseRate(gomock.Any(), "USD", "RWF").Return(decimal.RequireFromString("1300"), nil)

			svc := New(rates, settlement, logger.Nop())
			got, err := svc.ToLocal(context.Background(), decimal.RequireFromString(tt.amount), tt.direction)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLocal, got.LocalAmount)
			assert.True(t, got.Rate.Equal(decimal.RequireFromString(tt.wantRate)), "rate %s", got.Rate)
			assert.Equal(t, "RWF", got.LocalCurrency)
			assert.True(t, got.Spread.Equal(decimal.RequireFromString("39")), "spread %s", got.Spread)
		})
	}
}

func TestToLocal_DepositAlwaysAbovePayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	rates := mock_interfaces.NewMockExchangeRateProvider(ctrl)
	rates.EXPECT().GetBaseRate(gomock.Any(), "USD", "RWF").Return(decimal.RequireFromString("1412.37"), nil).Times(2)

	svc := New(rates, settlement, logger.Nop())
	amount := decimal.RequireFromString("372")
	deposit, err := svc.ToLocal(context.Background(), amount, domain.ConversionDeposit)
	require.NoError(t, err)
	payout, err := svc.ToLocal(context.Background(), amount, domain.ConversionPayout)
	require.NoError(t, err)

	assert.True(t, deposit.Rate.GreaterThan(payout.Rate))
	assert.Greater(t, len(deposit.LocalAmount), 0)
}

func TestToLocal_Errors(t *testing.T) {
	t.Run("rate provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mock_interfaces.NewMockExchangeRateProvider(ctrl)
		rates.EXPECT().GetBaseRate(gomock.Any(), "USD", "RWF").
			Return(decimal.Zero, domain.NewDependencyError("exchange_api", errors.New("connection refused")))

		_, err := New(rates, settlement, logger.Nop()).ToLocal(context.Background(), decimal.NewFromInt(10), domain.ConversionDeposit)
		assert.True(t, domain.IsDependency(err))
	})

	t.Run("zero rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mock_interfaces.NewMockExchangeRateProvider(ctrl)
		rates.EXPECT().GetBaseRate(gomock.Any(), "USD", "RWF").Return(decimal.Zero, nil)

		_, err := New(rates, settlement, logger.Nop()).ToLocal(context.Background(), decimal.NewFromInt(10), domain.ConversionDeposit)
		assert.True(t, domain.IsDependency(err))
	})

	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rates := mock_interfaces.NewMockExchangeRateProvider(ctrl)

		_, err := New(rates, settlement, logger.Nop()).ToLocal(context.Background(), decimal.NewFromInt(-1), domain.ConversionDeposit)
		assert.True(t, domain.IsValidation(err))
	})
}
