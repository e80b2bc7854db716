package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/server/middleware"
	"github.com/tuncanbit/bss/internal/server/websocket"
	"github.com/tuncanbit/bss/pkg/config"
)

// WebSocketHandler upgrades /status requests and registers the connection
// under the authenticated user.
type WebSocketHandler struct {
	wsManager interfaces.WebSocketManager
	upgrader  gws.Upgrader
	cfg       config.WebSocketConfig
	logger    zerolog.Logger
}

func NewWebSocketHandler(wsManager interfaces.WebSocketManager, cfg config.WebSocketConfig, logger zerolog.Logger) *WebSocketHandler {
	upgrader := gws.Upgrader{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
	}
	if !cfg.CheckOrigin {
		upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return &WebSocketHandler{
		wsManager: wsManager,
		upgrader:  upgrader,
		cfg:       cfg,
		logger:    logger.With().Str("component", "websocket_handler").Logger(),
	}
}

func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	client := websocket.NewClient(conn, userID, h.cfg.PingPeriod, h.logger)
	if err := h.wsManager.AddClient(client); err != nil {
		h.logger.Error().Err(err).Str("client_id", client.GetID()).Msg("Failed to add WebSocket client")
		client.Close()
		return
	}

	defer func() {
		h.wsManager.RemoveClient(client.GetID())
		h.logger.Info().Str("client_id", client.GetID()).Str("user_id", userID).Msg("WebSocket client disconnected")
	}()

	client.HandleConnection()
}
