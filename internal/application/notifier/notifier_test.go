package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuncanbit/bss/internal/domain"
	mock_interfaces "github.com/tuncanbit/bss/internal/domain/interfaces/mocks"
	"github.com/tuncanbit/bss/internal/domain/models"
	"github.com/tuncanbit/bss/pkg/logger"
)

func TestHandle_EmailsAndPushesEachRecipientOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mock_interfaces.NewMockNotificationClient(ctrl)
	hub := mock_interfaces.NewMockWebSocketManager(ctrl)
	n := New(email, hub, logger.Nop())

	event := domain.Event{
		ID:            "evt-1",
		Type:          domain.EventPaymentSucceeded,
		ReservationID: "res-1",
		TransactionID: "tx-1",
		Recipients:    []string{"guest-1", "owner-1", "guest-1", ""},
		Data:          map[string]string{"status": "COMPLETED", "amount": "486018"},
		OccurredAt:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	var sent []domain.Notification
	email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n domain.Notification) error {
		sent = append(sent, n)
		return nil
	}).Times(2)

	var pushed []string
	hub.EXPECT().SendToUser(gomock.Any(), gomock.Any()).DoAndReturn(func(user string, u *models.StatusUpdate) error {
		pushed = append(pushed, user)
		assert.Equal(t, "COMPLETED", u.Status)
		assert.Equal(t, "res-1", u.ReservationID)
		return nil
	}).Times(2)

	require.NoError(t, n.Handle(context.Background(), event))

	assert.Equal(t, []string{"guest-1", "owner-1"}, pushed)
	require.Len(t, sent, 2)
	assert.Equal(t, "payment.succeeded", sent[0].Template)
	assert.Equal(t, "Payment received", sent[0].Subject)
	assert.Equal(t, "tx-1", sent[0].Data["transaction_id"])
	assert.Equal(t, "486018", sent[0].Data["amount"])
	assert.NotContains(t, event.Data, "transaction_id")
}

func TestHandle_FailuresAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mock_interfaces.NewMockNotificationClient(ctrl)
	hub := mock_interfaces.NewMockWebSocketManager(ctrl)
	n := New(email, hub, logger.Nop())

	email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(domain.NewDependencyError("notification service", errors.New("503")))
	hub.EXPECT().SendToUser("owner-1", gomock.Any()).Return(errors.New("send channel full"))

	err := n.Handle(context.Background(), domain.Event{Type: domain.EventPayoutFailed, Recipients: []string{"owner-1"}})
	assert.NoError(t, err)
}

func TestHandle_UnknownEventAndNoHub(t *testing.T) {
	ctrl := gomock.NewController(t)
	email := mock_interfaces.NewMockNotificationClient(ctrl)
	n := New(email, nil, logger.Nop())

	require.NoError(t, n.Handle(context.Background(), domain.Event{Type: "something.else", Recipients: []string{"guest-1"}}))

	email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, n.Handle(context.Background(), domain.Event{Type: domain.EventRefundCompleted, Recipients: []string{"guest-1"}}))
}
