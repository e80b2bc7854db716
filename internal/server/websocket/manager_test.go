package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	mock_interfaces "github.com/tuncanbit/bss/internal/domain/interfaces/mocks"
	"github.com/tuncanbit/bss/internal/domain/models"
	"github.com/tuncanbit/bss/pkg/logger"
)

func mockClient(ctrl *gomock.Controller, id, user string) *mock_interfaces.MockWebSocketClient {
	c := mock_interfaces.NewMockWebSocketClient(ctrl)
	c.EXPECT().GetID().Return(id).AnyTimes()
	c.EXPECT().GetUserID().Return(user).AnyTimes()
	return c
}

func TestManager_SendToUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewManager(logger.Nop())

	phone := mockClient(ctrl, "c-1", "guest-1")
	laptop := mockClient(ctrl, "c-2", "guest-1")
	other := mockClient(ctrl, "c-3", "owner-1")
	for _, c := range []interfaces.WebSocketClient{phone, laptop, other} {
		require.NoError(t, m.AddClient(c))
	}

	update := &models.StatusUpdate{Type: "payment.succeeded", Status: "COMPLETED"}
	phone.EXPECT().Send(update).Return(nil)
	laptop.EXPECT().Send(update).Return(nil)

	require.NoError(t, m.SendToUser("guest-1", update))
	require.NoError(t, m.SendToUser("nobody", update))
	assert.Equal(t, 3, m.GetClientCount())
}

func TestManager_DropsInactiveClientOnFailedSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewManager(logger.Nop())

	stale := mockClient(ctrl, "c-1", "guest-1")
	require.NoError(t, m.AddClient(stale))

	update := &models.StatusUpdate{Type: "booking.created"}
	stale.EXPECT().Send(update).Return(ErrClientInactive)
	stale.EXPECT().IsActive().Return(false)
	stale.EXPECT().Close().Return(nil)

	require.NoError(t, m.Broadcast(update))
	assert.Equal(t, 0, m.GetClientCount())
	assert.ErrorIs(t, m.RemoveClient("c-1"), ErrClientNotFound)
}

func TestManager_RunClosesClientsOnShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewManager(logger.Nop())

	c := mockClient(ctrl, "c-1", "guest-1")
	c.EXPECT().IsActive().Return(true).AnyTimes()
	c.EXPECT().Close().Return(nil)
	require.NoError(t, m.AddClient(c))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, 0, m.GetClientCount())
}
