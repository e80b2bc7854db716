package bookingservice

import (
	"context"
	"time"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/booking_service_mock.go -package=mock_bookingservice

type IBookingService interface {
	Quote(ctx context.Context, resourceID string, start, end time.Time) (*domain.Quote, error)
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Reservation, error)
	GetBooking(ctx context.Context, id string) (*domain.Reservation, error)
	// CancelBooking cancels an active booking on behalf of actorID and starts
	// the refund the cancellation policy allows when the booking was paid.
	CancelBooking(ctx context.Context, id string, by domain.CancelRole, actorID string) (*domain.CancellationResult, error)
	BlockDates(ctx context.Context, req domain.BlockRequest) (*domain.BlockedRange, error)
	UnblockDates(ctx context.Context, id, actorID string) error
}
