// Package presence tracks transient typing/recording indicators for the
// open conversation, and emits the local side of those signals.
package presence

import (
	"sync"
)

// Indicator is what the conversation header should display for a user.
type Indicator string

const (
	IndicatorNone      Indicator = ""
	IndicatorTyping    Indicator = "typing"
	IndicatorRecording Indicator = "recording"
)

type signals struct {
	typing    bool
	recording bool
}

// Tracker holds the remote presence signals, one pair per user. Decay is
// event-driven only: an ACTIVE signal persists until the peer's explicit
// stop event, or until a new message from that peer force-clears it.
// No local timeout ever decays a remote signal.
type Tracker struct {
	mu    sync.Mutex
	users map[string]signals
}

func NewTracker() *Tracker {
	return &Tracker{users: make(map[string]signals)}
}

func (t *Tracker) SetTyping(userID string, active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.users[userID]
	s.typing = active
	t.users[userID] = s
}

func (t *Tracker) SetRecording(userID string, active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.users[userID]
	s.recording = active
	t.users[userID] = s
}

// ClearFor drops both signals for a user, as a side effect of receiving a
// message from them.
func (t *Tracker) ClearFor(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.users, userID)
}

func (t *Tracker) IsTyping(userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.users[userID].typing
}

func (t *Tracker) IsRecording(userID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.users[userID].recording
}

// IndicatorFor resolves the display precedence: recording wins over typing.
// Both underlying signals stay retained regardless of what is displayed.
func (t *Tracker) IndicatorFor(userID string) Indicator {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.users[userID]
	switch {
	case s.recording:
		return IndicatorRecording
	case s.typing:
		return IndicatorTyping
	default:
		return IndicatorNone
	}
}

// Reset forgets every tracked user, as on conversation switch or teardown.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.users = make(map[string]signals)
}
