package websocket

import (
	"log"
	"sync"

	"quizhub/models"

	"github.com/gorilla/websocket"
)

// GamificationClient is one connected listener for badge and level events.
type GamificationClient struct {
	Conn    *websocket.Conn
	UserID  string
	writeMu sync.Mutex
}

// SafeWriteJSON serializes writes so concurrent broadcasts don't interleave
// frames on the same connection.
func (gc *GamificationClient) SafeWriteJSON(v interface{}) error {
	gc.writeMu.Lock()
	defer gc.writeMu.Unlock()
	return gc.Conn.WriteJSON(v)
}

// Clients are keyed by user id; one user may hold several connections
// (multiple tabs).
var (
	gamificationClients = make(map[string]map[*GamificationClient]bool)
	gamificationMutex   sync.RWMutex
)

// RegisterGamificationClient adds a connection to the user's set.
func RegisterGamificationClient(client *GamificationClient) {
	gamificationMutex.Lock()
	defer gamificationMutex.Unlock()
	if gamificationClients[client.UserID] == nil {
		gamificationClients[client.UserID] = make(map[*GamificationClient]bool)
	}
	gamificationClients[client.UserID][client] = true
}

// UnregisterGamificationClient drops a connection and closes it.
func UnregisterGamificationClient(client *GamificationClient) {
	gamificationMutex.Lock()
	defer gamificationMutex.Unlock()
	set := gamificationClients[client.UserID]
	if set != nil {
		delete(set, client)
		if len(set) == 0 {
			delete(gamificationClients, client.UserID)
		}
	}
	client.Conn.Close()
}

// BroadcastGamificationEvent delivers an event to the connections of the
// user it concerns. Events for users without an open connection are dropped;
// badges are recomputed from stats, so nothing is lost.
func BroadcastGamificationEvent(event models.GamificationEvent) {
	gamificationMutex.RLock()
	defer gamificationMutex.RUnlock()

	for client := range gamificationClients[event.UserID] {
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Failed to deliver %s event to user %s: %v", event.Type, event.UserID, err)
		}
	}
}
