package conversionservice

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=conversion_service.go -destination=mocks/conversion_service_mock.go -package=mock_conversionservice

type IConversionService interface {
	// ToLocal converts a settlement-currency amount to a local minor-unit
	// string at the deposit or payout rate.
	ToLocal(ctx context.Context, amount decimal.Decimal, direction domain.ConversionDirection) (*domain.Conversion, error)
	LocalCurrency() string
}
