package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Yon-ln/33s/entity"
)

// Update is what storefront pages receive: either a serving-mode change or
// a hint that the menu grid changed and should be re-fetched.
type Update struct {
	Kind   string `json:"kind"` // "mode" | "menu-updated"
	Mode   string `json:"mode,omitempty"`
	Status string `json:"status,omitempty"`
}

// LiveHub fans availability and menu updates out to open storefront pages.
type LiveHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Update
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewLiveHub() *LiveHub {
	return &LiveHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Update, 8),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *LiveHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case upd := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(upd); err != nil {
					log.Warn().Err(err).Msg("ws write error")
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastMode pushes a serving-mode transition.
func (h *LiveHub) BroadcastMode(mode entity.ServiceMode) {
	h.broadcast <- Update{Kind: "mode", Mode: mode.String(), Status: mode.Status()}
}

// BroadcastMenuUpdated tells pages the grid content changed.
func (h *LiveHub) BroadcastMenuUpdated() {
	h.broadcast <- Update{Kind: "menu-updated"}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Serve upgrades the request and parks the connection until the client
// goes away. The storefront never sends anything meaningful upward.
func (h *LiveHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
