package websocket

import (
	"log"
	"net/http"
	"strings"

	"quizhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var gamificationUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GamificationWebSocketHandler upgrades a connection for gamification
// updates. Browsers can't set headers on websocket dials, so the token is
// also accepted as a query parameter.
func GamificationWebSocketHandler(c *gin.Context) {
	var tokenString string
	if authz := c.GetHeader("Authorization"); authz != "" {
		parts := strings.Split(authz, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	claims, err := utils.ValidateJWTToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := gamificationUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade gamification websocket: %v", err)
		return
	}

	client := &GamificationClient{Conn: conn, UserID: claims.UserID}
	RegisterGamificationClient(client)

	// Drain the connection; clients only listen on this stream. Read errors
	// (including close) drop the client.
	go func() {
		defer UnregisterGamificationClient(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
