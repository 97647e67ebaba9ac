package presence

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"mychat-client/contract"
)

// DefaultIdleTimeout is how long after the last keystroke the typing
// signal decays into an explicit stop.
const DefaultIdleTimeout = 2000 * time.Millisecond

// Typist emits the local compose signals to the current recipient: every
// non-empty keystroke (re)announces typing and re-arms the idle timer;
// the timer's expiry emits exactly one stop.
type Typist struct {
	mu        sync.Mutex
	emitter   contract.Emitter
	log       *slog.Logger
	idle      time.Duration
	recipient string
	timer     *time.Timer
	active    bool
}

func NewTypist(emitter contract.Emitter, log *slog.Logger, idle time.Duration) *Typist {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &Typist{emitter: emitter, log: log, idle: idle}
}

// SetRecipient retargets the typist on a conversation switch. A pending
// idle timer for the previous recipient is left to fire; it resolves as a
// no-op because the recipient no longer matches.
func (t *Typist) SetRecipient(recipientID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recipient = recipientID
	t.active = false
}

// Keystroke reports the current compose content after a keystroke.
// Non-empty input emits an active typing signal and re-arms the idle
// timer; empty input stops immediately.
func (t *Typist) Keystroke(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.recipient == "" {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if strings.TrimSpace(text) == "" {
		// Cleared input stops immediately, active or not.
		t.active = false
		if err := t.emitter.StopTyping(t.recipient); err != nil {
			t.log.Warn("stop typing signal not sent", "error", err)
		}
		return
	}
	if err := t.emitter.Typing(t.recipient); err != nil {
		t.log.Warn("typing signal not sent", "error", err)
	}
	t.active = true
	recipient := t.recipient
	t.timer = time.AfterFunc(t.idle, func() { t.expire(recipient) })
}

// Sent clears the typing state after a message went out.
func (t *Typist) Sent() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.stopLocked()
}

func (t *Typist) expire(recipient string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active || t.recipient != recipient {
		return
	}
	t.active = false
	if err := t.emitter.StopTyping(recipient); err != nil {
		t.log.Warn("stop typing signal not sent", "error", err)
	}
}

func (t *Typist) stopLocked() {
	if !t.active {
		return
	}
	t.active = false
	if err := t.emitter.StopTyping(t.recipient); err != nil {
		t.log.Warn("stop typing signal not sent", "error", err)
	}
}

// StartRecording announces an audio capture to the current recipient.
func (t *Typist) StartRecording() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.recipient == "" {
		return
	}
	if err := t.emitter.Recording(t.recipient); err != nil {
		t.log.Warn("recording signal not sent", "error", err)
	}
}

func (t *Typist) StopRecording() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.recipient == "" {
		return
	}
	if err := t.emitter.StopRecording(t.recipient); err != nil {
		t.log.Warn("stop recording signal not sent", "error", err)
	}
}
