package domain_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tuncanbit/bss/internal/domain"
)

// overlapsByCase is the start-inside / end-inside / fully-containing form.
func overlapsByCase(start, end, s, e time.Time) bool {
	startInside := !start.Before(s) && start.Before(e)
	endInside := end.After(s) && !end.After(e)
	contains := !start.After(s) && !end.Before(e)
	return startInside || endInside || contains
}

func TestOverlaps_MatchesCaseAnalysis(t *testing.T) {
	rng := rand.New(rand.NewSource(20240611))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	for i := 0; i < 20000; i++ {
		a := rng.Intn(60)
		b := rng.Intn(60)
		aLen := 1 + rng.Intn(14)
		bLen := 1 + rng.Intn(14)

		start, end := day(a), day(a+aLen)
		s, e := day(b), day(b+bLen)

		want := overlapsByCase(start, end, s, e)
		got := domain.Overlaps(start, end, s, e)
		if !assert.Equal(t, want, got, "candidate [%d,%d) existing [%d,%d)", a, a+aLen, b, b+bLen) {
			return
		}
		assert.Equal(t, got, domain.Overlaps(s, e, start, end), "overlap must be symmetric")
	}
}

func TestOverlaps_Edges(t *testing.T) {
	d := func(n int) time.Time { return time.Date(2025, 3, n, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end time.Time
		s, e       time.Time
		want       bool
	}{
		{"back to back after", d(10), d(12), d(12), d(14), false},
		{"back to back before", d(10), d(12), d(8), d(10), false},
		{"identical", d(10), d(12), d(10), d(12), true},
		{"contained", d(10), d(15), d(11), d(12), true},
		{"containing", d(11), d(12), d(10), d(15), true},
		{"tail overlap", d(10), d(12), d(11), d(14), true},
		{"disjoint", d(1), d(3), d(20), d(22), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Overlaps(tt.start, tt.end, tt.s, tt.e))
		})
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	in := time.Date(2025, 5, 2, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), domain.DateOnly(in))
}

func TestStatusHelpers(t *testing.T) {
	assert.True(t, domain.ReservationPending.IsActive())
	assert.True(t, domain.ReservationConfirmed.IsActive())
	assert.False(t, domain.ReservationCancelled.IsActive())

	assert.True(t, domain.TransactionCompleted.IsTerminal())
	assert.True(t, domain.TransactionFailed.IsTerminal())
	assert.False(t, domain.TransactionSubmitted.IsTerminal())
}

func TestPaymentStatus_AcceptsOutcome(t *testing.T) {
	tests := []struct {
		current domain.PaymentStatus
		next    domain.PaymentStatus
		want    bool
	}{
		{domain.PaymentPending, domain.PaymentCompleted, true},
		{domain.PaymentFailed, domain.PaymentCompleted, true},
		{domain.PaymentCancelled, domain.PaymentCompleted, true},
		{domain.PaymentCompleted, domain.PaymentCompleted, true},
		{domain.PaymentRefunded, domain.PaymentCompleted, false},
		{domain.PaymentPending, domain.PaymentFailed, true},
		{domain.PaymentFailed, domain.PaymentFailed, true},
		{domain.PaymentCompleted, domain.PaymentFailed, false},
		{domain.PaymentRefunded, domain.PaymentFailed, false},
		{domain.PaymentCompleted, domain.PaymentRefunded, true},
		{domain.PaymentRefunded, domain.PaymentRefunded, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.current.AcceptsOutcome(tt.next), "%s -> %s", tt.current, tt.next)
	}

	assert.ElementsMatch(t,
		[]domain.PaymentStatus{domain.PaymentPending, domain.PaymentProcessing, domain.PaymentFailed, domain.PaymentCancelled},
		domain.PaymentStatusesAccepting(domain.PaymentFailed))
}
