// Package pricing derives booking prices and cancellation refunds. Every
// function here is pure so quotes and bookings price identically.
package pricing

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
)

var (
	cleaningRate = decimal.RequireFromString("0.10")
	serviceRate  = decimal.RequireFromString("0.05")
	taxRate      = decimal.RequireFromString("0.08")

	refundEarly = decimal.RequireFromString("0.50")
	refundLate  = decimal.RequireFromString("0.25")
)

const (
	// Requester cancellations at least this many days out get refundEarly.
	earlyCancellationDays = 5
	minorUnitDecimals     = 2
)

// Nights returns the number of nights between start and end, rounding any
// partial day up.
func Nights(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / 24))
}

// PriceBreakdown prices a stay. Cleaning and service fees round half-up to the
// minor unit; taxes are truncated to whole currency units.
func PriceBreakdown(nightlyRate decimal.Decimal, start, end time.Time, twoNightRate *decimal.Decimal, currency string) (domain.PriceBreakdown, error) {
	nights := Nights(start, end)
	if nights < 1 {
		return domain.PriceBreakdown{}, domain.NewValidationError("end_date", "must be after start_date")
	}
	if nightlyRate.IsNegative() {
		return domain.PriceBreakdown{}, domain.NewValidationError("nightly_rate", "must not be negative")
	}

	subtotal := nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
	if nights == 2 && twoNightRate != nil {
		subtotal = *twoNightRate
	}
	subtotal = subtotal.Round(minorUnitDecimals)

	cleaning := subtotal.Mul(cleaningRate).Round(minorUnitDecimals)
	service := subtotal.Mul(serviceRate).Round(minorUnitDecimals)
	taxes := subtotal.Add(cleaning).Add(service).Mul(taxRate).Truncate(0)

	return domain.PriceBreakdown{
		Nights:      nights,
		NightlyRate: nightlyRate,
		Subtotal:    subtotal,
		CleaningFee: cleaning,
		ServiceFee:  service,
		Taxes:       taxes,
		Total:       subtotal.Add(cleaning).Add(service).Add(taxes),
		Currency:    currency,
	}, nil
}

// DaysUntil counts calendar days from now to start. A start earlier today or
// in the past yields zero or less.
func DaysUntil(start, now time.Time) int {
	return int(domain.DateOnly(start).Sub(domain.DateOnly(now)).Hours() / 24)
}

// RefundRate is the share of the total returned for a cancellation.
func RefundRate(by domain.CancelRole, daysUntilStart int) decimal.Decimal {
	if by == domain.CancelledByOwner {
		return decimal.NewFromInt(1)
	}
	switch {
	case daysUntilStart >= earlyCancellationDays:
		return refundEarly
	case daysUntilStart >= 1:
		return refundLate
	default:
		return decimal.Zero
	}
}

func RefundAmount(reservation *domain.Reservation, by domain.CancelRole, now time.Time) decimal.Decimal {
	rate := RefundRate(by, DaysUntil(reservation.StartDate, now))
	return reservation.Price.Total.Mul(rate).Round(minorUnitDecimals)
}
