package user

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"vitrine_back_end/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

type SyncHandler struct {
	Store *store.Store
}

func NewSyncHandler(s *store.Store) *SyncHandler {
	return &SyncHandler{Store: s}
}

// StateWebSocket pousse chaque nouvel état composé du store au client.
func (h *SyncHandler) StateWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	// S'abonner au store
	id, ch := h.Store.Subscribe()
	defer h.Store.Unsubscribe(id)

	// Envoyer un message de connexion puis l'état courant
	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation du store activée",
	})
	if err := conn.WriteJSON(map[string]interface{}{
		"type":  "state",
		"state": h.Store.Snapshot(),
	}); err != nil {
		return
	}

	// Boucle d'écoute
	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(map[string]interface{}{
				"type":  "state",
				"state": snap,
			}); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
