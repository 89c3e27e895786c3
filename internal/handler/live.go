package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

const (
	maxPanelMessageBytes = 4 << 10
	panelIdleTimeout     = 5 * time.Minute
	panelWriteTimeout    = 10 * time.Second
)

// LiveHandler serves the live control panel over a WebSocket.
// Every inbound PanelUpdate yields exactly one PanelView or error message.
type LiveHandler struct {
	panel    *service.Panel
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(panel *service.Panel) *LiveHandler {
	return &LiveHandler{
		panel: panel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleLive handles GET /api/v1/live upgrades.
func (h *LiveHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxPanelMessageBytes)

	state := service.DefaultPanelState()
	if err := h.send(conn, h.panel.Render(state)); err != nil {
		return
	}

	for {
		conn.SetReadDeadline(time.Now().Add(panelIdleTimeout))

		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("live panel closed unexpectedly", "error", err)
			}
			return
		}

		var update model.PanelUpdate
		if err := json.Unmarshal(data, &update); err != nil {
			if err := h.send(conn, errorResponse("invalid message")); err != nil {
				return
			}
			continue
		}
		if err := service.ValidateUpdate(update); err != nil {
			if err := h.send(conn, errorResponse(err.Error())); err != nil {
				return
			}
			continue
		}

		state = service.ApplyUpdate(state, update)
		if err := h.send(conn, h.panel.Render(state)); err != nil {
			return
		}
	}
}

func (h *LiveHandler) send(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(panelWriteTimeout))
	if err := conn.WriteJSON(v); err != nil {
		slog.Warn("live panel write failed", "error", err)
		return err
	}
	return nil
}
