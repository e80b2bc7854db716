package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConversionDirection string

const (
	ConversionDeposit ConversionDirection = "deposit"
	ConversionPayout  ConversionDirection = "payout"
)

type ExchangeRate struct {
	Base      string          `json:"base"`
	Quote     string          `json:"quote"`
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetched_at"`
}

type Conversion struct {
	Direction     ConversionDirection `json:"direction"`
	SourceAmount  decimal.Decimal     `json:"source_amount"`
	LocalAmount   string              `json:"local_amount"`
	LocalCurrency string              `json:"local_currency"`
	Rate          decimal.Decimal     `json:"rate"`
	BaseRate      decimal.Decimal     `json:"base_rate"`
	DepositRate   decimal.Decimal     `json:"deposit_rate"`
	PayoutRate    decimal.Decimal     `json:"payout_rate"`
	Spread        decimal.Decimal     `json:"spread"`
}
