package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade has already replied to the client
		return
	}
	defer func(ws *websocket.Conn) {
		err := ws.Close()
		if err != nil {
			a.logger.Debug(fmt.Sprintf("could not close websocket: %s", err))
		}
	}(ws)

	a.wsMu.Lock()
	a.wsClients[ws] = &sync.Mutex{}
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMu.Unlock()

	done := make(chan struct{})
	go a.websocketWriter(ws, done)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.logger.Debug(fmt.Sprintf("Received: %s", msg))
	}

	close(done)
	a.wsMu.Lock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMu.Unlock()
}

func (a *Api) websocketWriter(ws *websocket.Conn, done <-chan struct{}) {
	pingTicker := time.NewTicker(2 * time.Second)
	defer pingTicker.Stop()

	for {
		select {
		case <-done:
			return
		case <-pingTicker.C:
		}
		packet, err := json.Marshal(a.Stats.Snapshot())
		if err != nil {
			return
		}
		if err := a.send(ws, packet); err != nil {
			return
		}
	}
}

// broadcast sends an event to every connected client.
func (a *Api) broadcast(event any) {
	packet, err := json.Marshal(event)
	if err != nil {
		a.logger.Error(fmt.Sprintf("could not encode event: %s", err))
		return
	}

	a.wsMu.Lock()
	clients := make([]*websocket.Conn, 0, len(a.wsClients))
	for ws := range a.wsClients {
		clients = append(clients, ws)
	}
	a.wsMu.Unlock()

	for _, ws := range clients {
		if err := a.send(ws, packet); err != nil {
			a.logger.Debug(fmt.Sprintf("could not send event: %s", err))
		}
	}
}

// send serialises writes per connection; gorilla allows one writer at a time.
func (a *Api) send(ws *websocket.Conn, packet []byte) error {
	a.wsMu.Lock()
	mu, ok := a.wsClients[ws]
	a.wsMu.Unlock()
	if !ok {
		return fmt.Errorf("client went away")
	}

	mu.Lock()
	defer mu.Unlock()
	err := ws.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err != nil {
		return fmt.Errorf("could not set write deadline: %w", err)
	}
	return ws.WriteMessage(websocket.TextMessage, packet)
}
