package socket

import (
	"log/slog"
	"sync"

	"mychat-client/errors"
)

// Lifecycle enforces the one-connection-per-identity discipline: Bind
// opens a connection for an identity (closing any previous one first, so
// a connection is never left open against a stale identity) and Clear
// tears it down on logout. Lifecycle is also the process-wide Emitter;
// emission failures are diagnostic, never blocking.
type Lifecycle struct {
	log     *slog.Logger
	url     string
	handler RawHandler

	mu      sync.Mutex
	current *Connection
}

func NewLifecycle(url string, handler RawHandler, log *slog.Logger) *Lifecycle {
	return &Lifecycle{log: log, url: url, handler: handler}
}

// Bind opens the realtime connection for an identity. Rebinding the same
// identity keeps the existing connection.
func (l *Lifecycle) Bind(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		if l.current.userID == userID {
			return nil
		}
		l.current.Close()
		l.current = nil
	}
	conn := newConnection(l.url, userID, l.handler, l.log)
	if err := conn.open(); err != nil {
		// Connection errors are logged, not surfaced as blocking failures.
		l.log.Error("realtime connection failed", "user", userID, "error", err)
		return err
	}
	l.current = conn
	return nil
}

// Clear closes the connection when the identity is cleared or replaced.
func (l *Lifecycle) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		l.current.Close()
		l.current = nil
	}
}

func (l *Lifecycle) emit(event string, data any) error {
	l.mu.Lock()
	conn := l.current
	l.mu.Unlock()
	if conn == nil {
		return errors.ErrNoIdentity
	}
	return conn.emit(event, data)
}

// Typing and friends implement contract.Emitter over whichever connection
// is currently bound.

func (l *Lifecycle) Typing(recipientID string) error {
	return l.emit("typing", map[string]any{"recipientId": recipientID, "isTyping": true})
}

func (l *Lifecycle) StopTyping(recipientID string) error {
	return l.emit("stopTyping", map[string]any{"recipientId": recipientID})
}

func (l *Lifecycle) Recording(recipientID string) error {
	return l.emit("recording", map[string]any{"recipientId": recipientID, "isRecording": true})
}

func (l *Lifecycle) StopRecording(recipientID string) error {
	return l.emit("stopRecording", map[string]any{"recipientId": recipientID})
}

func (l *Lifecycle) MessageRead(messageID, senderID string) error {
	return l.emit("messageRead", map[string]any{"messageId": messageID, "senderId": senderID})
}
