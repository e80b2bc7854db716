package websocket

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/domain/models"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrClientInactive = errors.New("client is inactive")
	ErrSendBufferFull = errors.New("send channel full")
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	maxMessageSize = 512
)

// Client is one websocket connection belonging to a user.
type Client struct {
	id         string
	userID     string
	conn       *websocket.Conn
	send       chan *models.StatusUpdate
	done       chan struct{}
	pingPeriod time.Duration
	logger     zerolog.Logger

	mu     sync.Mutex
	active bool
}

// NewClient starts the read and write pumps for conn.
func NewClient(conn *websocket.Conn, userID string, pingPeriod time.Duration, logger zerolog.Logger) interfaces.WebSocketClient {
	if pingPeriod <= 0 || pingPeriod >= pongWait {
		pingPeriod = (pongWait * 9) / 10
	}
	id := uuid.New().String()
	client := &Client{
		id:         id,
		userID:     userID,
		conn:       conn,
		active:     true,
		send:       make(chan *models.StatusUpdate, 256),
		done:       make(chan struct{}),
		pingPeriod: pingPeriod,
		logger:     logger.With().Str("client_id", id).Str("user_id", userID).Logger(),
	}

	go client.writePump()
	go client.readPump()

	return client
}

func (c *Client) GetID() string { return c.id }

func (c *Client) GetUserID() string { return c.userID }

// Send queues message without blocking. A full buffer drops the message.
func (c *Client) Send(message *models.StatusUpdate) error {
	if !c.IsActive() {
		return ErrClientInactive
	}

	select {
	case c.send <- message:
		return nil
	case <-c.done:
		return ErrClientInactive
	default:
		c.logger.Warn().Msg("WebSocket client send channel full, dropping message")
		return ErrSendBufferFull
	}
}

func (c *Client) Close() error {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		return nil
	}
	c.active = false
	close(c.done)
	c.mu.Unlock()

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) IsActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// HandleConnection blocks until the connection is closed.
func (c *Client) HandleConnection() {
	defer c.Close()
	<-c.done
}

// readPump discards client frames; it exists to process pongs and notice
// disconnects.
func (c *Client) readPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error().Err(err).Msg("Unexpected WebSocket close error")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			data, err := json.Marshal(message)
			if err != nil {
				c.logger.Error().Err(err).Msg("Failed to marshal WebSocket message")
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
