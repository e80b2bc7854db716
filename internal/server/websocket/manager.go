package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/domain/models"
)

var _ interfaces.WebSocketManager = (*Manager)(nil)

// Manager tracks live connections by client id and by user.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]interfaces.WebSocketClient
	byUser  map[string]map[string]interfaces.WebSocketClient
	logger  zerolog.Logger
}

func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		clients: make(map[string]interfaces.WebSocketClient),
		byUser:  make(map[string]map[string]interfaces.WebSocketClient),
		logger:  logger.With().Str("component", "websocket_manager").Logger(),
	}
}

func (m *Manager) AddClient(client interfaces.WebSocketClient) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clients[client.GetID()] = client
	userID := client.GetUserID()
	if m.byUser[userID] == nil {
		m.byUser[userID] = make(map[string]interfaces.WebSocketClient)
	}
	m.byUser[userID][client.GetID()] = client

	m.logger.Info().
		Str("client_id", client.GetID()).
		Str("user_id", userID).
		Int("user_connections", len(m.byUser[userID])).
		Int("total_clients", len(m.clients)).
		Msg("WebSocket client added")
	return nil
}

func (m *Manager) RemoveClient(clientID string) error {
	m.mu.Lock()
	client, exists := m.clients[clientID]
	if exists {
		m.forget(client)
	}
	total := len(m.clients)
	m.mu.Unlock()

	if !exists {
		return ErrClientNotFound
	}
	client.Close()
	m.logger.Info().
		Str("client_id", clientID).
		Int("total_clients", total).
		Msg("WebSocket client removed")
	return nil
}

// forget must be called with mu held.
func (m *Manager) forget(client interfaces.WebSocketClient) {
	delete(m.clients, client.GetID())
	if conns, ok := m.byUser[client.GetUserID()]; ok {
		delete(conns, client.GetID())
		if len(conns) == 0 {
			delete(m.byUser, client.GetUserID())
		}
	}
}

func (m *Manager) Broadcast(message *models.StatusUpdate) error {
	m.mu.RLock()
	clients := make([]interfaces.WebSocketClient, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.mu.RUnlock()

	m.deliver(clients, message)
	return nil
}

// SendToUser delivers message to every connection of userID. A user with no
// live connection is not an error.
func (m *Manager) SendToUser(userID string, message *models.StatusUpdate) error {
	m.mu.RLock()
	conns := m.byUser[userID]
	clients := make([]interfaces.WebSocketClient, 0, len(conns))
	for _, client := range conns {
		clients = append(clients, client)
	}
	m.mu.RUnlock()

	if len(clients) == 0 {
		return nil
	}
	m.deliver(clients, message)
	return nil
}

func (m *Manager) deliver(clients []interfaces.WebSocketClient, message *models.StatusUpdate) {
	failed := 0
	for _, c := range clients {
		if err := c.Send(message); err != nil {
			failed++
			m.logger.Warn().
				Err(err).
				Str("client_id", c.GetID()).
				Msg("Failed to send message to WebSocket client")
			if !c.IsActive() {
				m.RemoveClient(c.GetID())
			}
		}
	}

	m.logger.Debug().
		Int("success_count", len(clients)-failed).
		Int("failure_count", failed).
		Str("message_type", message.Type).
		Msg("WebSocket delivery completed")
}

func (m *Manager) GetClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}

// Run drops inactive clients every interval until ctx is cancelled, then
// closes the remaining connections.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Manager) sweep() {
	m.mu.Lock()
	var inactive []interfaces.WebSocketClient
	for _, client := range m.clients {
		if !client.IsActive() {
			inactive = append(inactive, client)
		}
	}
	for _, client := range inactive {
		m.forget(client)
	}
	remaining := len(m.clients)
	m.mu.Unlock()

	if len(inactive) > 0 {
		m.logger.Info().
			Int("removed_count", len(inactive)).
			Int("active_clients", remaining).
			Msg("Cleaned up inactive WebSocket clients")
	}
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	clients := make([]interfaces.WebSocketClient, 0, len(m.clients))
	for _, client := range m.clients {
		clients = append(clients, client)
	}
	m.clients = make(map[string]interfaces.WebSocketClient)
	m.byUser = make(map[string]map[string]interfaces.WebSocketClient)
	m.mu.Unlock()

	for _, client := range clients {
		client.Close()
	}
}
