package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler upgrades browser connections and gives each its own game.
type Handler struct {
	SessionManager *game.SessionManager
	Upgrader       websocket.Upgrader
}

func NewHandler(sm *game.SessionManager, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return &Handler{
		SessionManager: sm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowed[origin] || origin == "http://"+r.Host || origin == "https://"+r.Host {
					return true
				}
				log.Printf("[WS] Origin '%s' not allowed", origin)
				return false
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	h.handleConnection(conn)
}

// handleConnection manages the lifecycle of a single WebSocket connection
func (h *Handler) handleConnection(conn *websocket.Conn) {
	client := NewClient(conn)
	defer client.Close()

	session, err := h.SessionManager.CreateSession(client)
	if err != nil {
		log.Printf("[WS] Could not create game: %v", err)
		client.SendMessage(domain.ServerMessage{Type: "error", Message: "Could not create game"})
		return
	}
	defer h.SessionManager.RemoveSession(session.GameID)

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(client, done)

	if err := session.Start(); err != nil {
		log.Printf("[WS] Failed to start game %s: %v", session.GameID, err)
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Connection for game %s closed unexpectedly: %v", session.GameID, err)
			}
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("[WS] Invalid message format: %v", err)
			continue
		}

		h.processMessage(session, msg)
	}
}

// processMessage routes specific actions
func (h *Handler) processMessage(session *game.GameSession, msg domain.ClientMessage) {
	switch msg.Type {
	case "drop":
		// rejected drops are no-ops for the player; the session logs them
		session.HandleColumnSelected(msg.Column)
	default:
		log.Printf("[WS] Unknown message type %q for game %s", msg.Type, session.GameID)
	}
}

func keepAlive(client *Client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}
