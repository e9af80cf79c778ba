// internal/api/handlers/websocket_handler.go
package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/msafryx/fleet-management-backend/internal/api/middleware"
	"github.com/msafryx/fleet-management-backend/internal/socket"
)

// Maximum time to wait for a ping from the client.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub      *socket.Hub
	Verifier middleware.TokenVerifier

	// AuthDisabled mirrors the REST middleware's development bypass.
	AuthDisabled bool
}

// ServeWs upgrades the connection and keeps it registered for fleet event
// broadcasts. Browsers cannot set headers on websocket dials, so the token
// arrives as a query parameter.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	userID := "dev"
	if !h.AuthDisabled {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
			return
		}
		identity, err := h.Verifier.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		userID = identity.Subject
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.Hub.Register(userID, conn)
	defer func() {
		h.Hub.Unregister(userID)
		conn.Close()
	}()

	// Heartbeat: any ping from the client extends the read deadline.
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close error: %v", err)
			}
			break
		}
	}
}
