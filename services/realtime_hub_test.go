package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Broadcasts and keepalive pings hit the same connection from different
// goroutines; every frame must still arrive intact.
func TestBroadcastAndPingsShareOneConnection(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		cl := &WSClient{Conn: conn}
		hub.Register(cl)
		go func() {
			for i := 0; i < 50; i++ {
				_ = cl.WriteMessage(websocket.PingMessage, nil)
			}
		}()
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients) == 1
	}, time.Second, 10*time.Millisecond)

	const writers, perWriter = 8, 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				hub.Broadcast(EventLogUpdated, map[string]any{"date": "2026-03-01"})
			}
		}()
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for got := 0; got < writers*perWriter; got++ {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		require.Contains(t, string(msg), EventLogUpdated)
	}
	wg.Wait()
}
