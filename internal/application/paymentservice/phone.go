package paymentservice

import (
	"strings"

	"github.com/ttacon/libphonenumber"
	"github.com/tuncanbit/bss/internal/domain"
)

// normalizeMSISDN validates a mobile-money number and returns it as E.164
// digits without the leading plus, which is what the provider expects.
func normalizeMSISDN(field, raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", domain.NewValidationError(field, "is required")
	}

	number, err := libphonenumber.Parse(raw, region)
	if err != nil {
		return "", domain.NewValidationError(field, "invalid phone number: %v", err)
	}
	if !libphonenumber.IsValidNumber(number) {
		return "", domain.NewValidationError(field, "invalid phone number %q", raw)
	}
	return strings.TrimPrefix(libphonenumber.Format(number, libphonenumber.E164), "+"), nil
}
