package conversionservice

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/currency"
)

var (
	depositMarkup = decimal.RequireFromString("1.005")
	payoutMarkup  = decimal.RequireFromString("0.975")
)

type conversionService struct {
	rates         interfaces.ExchangeRateProvider
	settlement    config.SettlementConfig
	currencyUtils *currency.CurrencyUtils
	logger        zerolog.Logger
}

func New(rates interfaces.ExchangeRateProvider, settlement config.SettlementConfig, logger zerolog.Logger) IConversionService {
	return &conversionService{
		rates:         rates,
		settlement:    settlement,
		currencyUtils: currency.NewCurrencyUtils(settlement.LocalDecimals),
		logger:        logger.With().Str("component", "conversion_service").Logger(),
	}
}

func (s *conversionService) LocalCurrency() string {
	return s.settlement.LocalCurrency
}

func (s *conversionService) ToLocal(ctx context.Context, amount decimal.Decimal, direction domain.ConversionDirection) (*domain.Conversion, error) {
	if amount.IsNegative() {
		return nil, domain.NewValidationError("amount", "must not be negative")
	}

	base, err := s.rates.GetBaseRate(ctx, s.settlement.Currency, s.settlement.LocalCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s rate: %w", s.settlement.Currency, s.settlement.LocalCurrency, err)
	}
	if !base.IsPositive() {
		return nil, domain.NewDependencyError("exchange_api", fmt.Errorf("non-positive rate %s", base))
	}

	depositRate := base.Mul(depositMarkup)
	payoutRate := base.Mul(payoutMarkup)

	var rate decimal.Decimal
	switch direction {
	case domain.ConversionDeposit:
		rate = depositRate
	case domain.ConversionPayout:
		rate = payoutRate
	default:
		return nil, domain.NewValidationError("direction", "unknown conversion direction %q", direction)
	}

	conversion := &domain.Conversion{
		Direction:     direction,
		SourceAmount:  amount,
		LocalAmount:   s.currencyUtils.LocalMinor(amount.Mul(rate)),
		LocalCurrency: s.settlement.LocalCurrency,
		Rate:          rate,
		BaseRate:      base,
		DepositRate:   depositRate,
		PayoutRate:    payoutRate,
		Spread:        depositRate.Sub(payoutRate),
	}

	s.logger.Debug().
		Str("direction", string(direction)).
		Str("amount", amount.String()).
		Str("local_amount", conversion.LocalAmount).
		Str("rate", rate.String()).
		Msg("Converted amount to local currency")

	return conversion, nil
}
