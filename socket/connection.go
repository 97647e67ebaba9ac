// Package socket owns the realtime connection to the messaging service.
// Exactly one connection exists per authenticated identity; every open
// conversation multiplexes over it.
package socket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Envelope is the wire frame of every realtime event, inbound and outbound.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// RawHandler receives every inbound envelope, in arrival order, from the
// single read loop.
type RawHandler func(env Envelope)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Connection is one live websocket tied to one identity. On every
// (re)connect it announces the identity with a join signal so the server
// routes subsequent events here. Missed events while disconnected are not
// replayed; they are recovered only by the next explicit fetch.
type Connection struct {
	log     *slog.Logger
	url     string
	userID  string
	handler RawHandler

	writeMu sync.Mutex
	conn    *websocket.Conn

	mu     sync.Mutex
	closed bool
}

func newConnection(url, userID string, handler RawHandler, log *slog.Logger) *Connection {
	return &Connection{log: log, url: url, userID: userID, handler: handler}
}

// open dials the service and starts the read loop. The loop redials with
// capped exponential backoff until Close is called.
func (c *Connection) open() error {
	conn, err := c.dial()
	if err != nil {
		return err
	}
	c.setConn(conn)
	go c.readLoop()
	return nil
}

func (c *Connection) dial() (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", c.url, err)
	}
	if err := writeEnvelope(conn, outEnvelope{Event: "join", Data: map[string]string{"userId": c.userID}}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("join emit: %w", err)
	}
	c.log.Info("realtime connection established", "user", c.userID)
	return conn, nil
}

// readLoop delivers inbound envelopes strictly in arrival order. All store
// mutations downstream happen on this dispatch, which serializes them.
func (c *Connection) readLoop() {
	for {
		conn := c.currentConn()
		if conn == nil {
			return
		}
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if c.isClosed() {
				return
			}
			c.log.Warn("realtime connection lost", "error", err)
			if !c.reconnect() {
				return
			}
			continue
		}
		c.handler(env)
	}
}

func (c *Connection) reconnect() bool {
	backoff := initialBackoff
	for {
		if c.isClosed() {
			return false
		}
		conn, err := c.dial()
		if err == nil {
			c.setConn(conn)
			return true
		}
		c.log.Warn("reconnect attempt failed", "error", err, "retry_in", backoff)
		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// Close tears the connection down for good; the read loop stops and no
// reconnection is attempted.
func (c *Connection) Close() {
	c.mu.Lock()
	c.closed = true
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
	c.log.Info("realtime connection closed", "user", c.userID)
}

func (c *Connection) emit(event string, data any) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("emit %s: connection is down", event)
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return conn.WriteJSON(outEnvelope{Event: event, Data: data})
}

func writeEnvelope(conn *websocket.Conn, env outEnvelope) error {
	return conn.WriteJSON(env)
}

func (c *Connection) currentConn() *websocket.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn
}

func (c *Connection) setConn(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn = conn
}

func (c *Connection) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
