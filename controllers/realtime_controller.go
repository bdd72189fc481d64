package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/warriorfdkl/kalogram/services"
)

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	// the mini app is served from Telegram's webview origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /api/events
//
// Upgrades to a websocket that receives foodSaved / goalsUpdated events for
// the authenticated user.
func (rc *RealtimeController) EventsWS(c *gin.Context) {
	uid := c.GetInt64("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{UserID: uid, Conn: conn}
	rc.hub.Register(client)

	// the read loop only exists to detect the close
	go func() {
		defer rc.hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
