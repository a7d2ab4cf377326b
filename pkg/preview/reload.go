package preview

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// reloadMessage is the text frame broadcast to clients on change.
const reloadMessage = "reload"

// reloadHub manages WebSocket connections for live reload.
type reloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	metrics  *metrics
}

// newReloadHub creates a hub. metrics may be nil in tests.
func newReloadHub(m *metrics) *reloadHub {
	return &reloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Local preview, all origins allowed
			},
		},
		metrics: m,
	}
}

// handleWebSocket upgrades the connection and keeps it registered
// until the client disconnects.
func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	if h.metrics != nil {
		h.metrics.reloadClients.Inc()
	}

	// Drain until the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
}

// notifyReload broadcasts a reload message to all connected clients.
func (h *reloadHub) notifyReload() {
	if h.metrics != nil {
		h.metrics.reloadsTotal.Inc()
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, []byte(reloadMessage)); err != nil {
			h.remove(client)
		}
	}
}

// clientCount returns the number of connected clients.
func (h *reloadHub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// remove unregisters and closes a connection.
func (h *reloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, present := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()

	if present {
		if h.metrics != nil {
			h.metrics.reloadClients.Dec()
		}
		conn.Close()
	}
}

// close drops all client connections.
func (h *reloadHub) close() {
	h.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	for _, client := range clients {
		h.remove(client)
	}
}

// reloadClientScript is injected into HTML responses in watch mode.
// It reloads the page when the server broadcasts a change.
const reloadClientScript = `<script>
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_weft/reload');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            if (e.data === 'reload') {
                console.log('[weft] Reloading...');
                location.reload();
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
</script>
`
