package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS governs the HTTP API; the event stream is read-only
	},
}

// WebSocketHandler streams catalog events to websocket clients
type WebSocketHandler struct {
	hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// HandleWebSocket upgrades the connection. The optional category query
// parameter limits the stream to one category.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	category := 0
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return badRequest(err)
		}
		category = id
	}

	conn, err := upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		// Upgrade has already written the failure response
		return nil
	}

	h.hub.Serve(ws.NewClient(h.hub, conn, category))
	return nil
}
