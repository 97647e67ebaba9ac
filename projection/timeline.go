// Package projection builds local views from fetched history and observed
// realtime events. Handles ordering, deduplication, and per-viewer visibility.
// Does not emit events or interact with UI directly.
package projection

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"mychat-client/contract"
	"mychat-client/domain"
)

// Timeline holds the ordered message sequence of the one conversation that
// is currently open. Ordering is strict arrival order; entries are never
// re-sorted by timestamp.
type Timeline struct {
	mu       sync.Mutex
	api      contract.IChatAPI
	log      *slog.Logger
	peerID   string
	viewerID string
	// generation invalidates in-flight history fetches after a switch.
	generation uint64
	messages   []domain.Message
}

func NewTimeline(api contract.IChatAPI, log *slog.Logger) *Timeline {
	return &Timeline{api: api, log: log}
}

// SetViewer records the local identity used for visibility filtering.
func (t *Timeline) SetViewer(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.viewerID = userID
}

// Load switches the timeline to a peer after re-fetching the full history.
// The previous sequence stays in place until the fetch succeeds, so a
// failed switch leaves the current conversation untouched. The result is
// applied only if no newer Load or Close started in the meantime, so a
// slow response for a previous conversation can never leak into the
// current one.
func (t *Timeline) Load(ctx context.Context, peerID string) error {
	t.mu.Lock()
	t.generation++
	gen := t.generation
	t.mu.Unlock()

	history, err := t.api.GetHistory(ctx, peerID)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.generation != gen {
		t.log.Debug("history fetch superseded by a newer load", "peer", peerID)
		return nil
	}
	t.peerID = peerID
	t.messages = history
	return nil
}

// PeerID returns the id of the peer whose conversation is open, or "".
func (t *Timeline) PeerID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.peerID
}

// Close discards the sequence and detaches from the current peer.
func (t *Timeline) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.peerID = ""
	t.messages = nil
}

// Append inserts a message at the tail unless its id is already present.
// Returns true when the message was actually added.
func (t *Timeline) Append(m domain.Message) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.contains(m.ID) {
		return false
	}
	t.messages = append(t.messages, m)
	return true
}

// Confirm replaces the optimistic entry tempID with the server-confirmed
// record, keeping its position. If the confirmed id already arrived through
// the event stream the temporary entry is simply dropped.
func (t *Timeline) Confirm(tempID string, m domain.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.contains(m.ID) {
		t.drop(tempID)
		return
	}
	for i := range t.messages {
		if t.messages[i].ID == tempID {
			t.messages[i] = m
			return
		}
	}
	t.messages = append(t.messages, m)
}

// Abandon removes a failed optimistic entry.
func (t *Timeline) Abandon(tempID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.drop(tempID)
}

// ApplyStatus advances a message status. Updates that would move the status
// backwards and updates for ids that are not loaded are no-ops.
func (t *Timeline) ApplyStatus(messageID string, status domain.MessageStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.messages {
		if t.messages[i].ID != messageID {
			continue
		}
		if t.messages[i].Status.Advances(status) {
			t.messages[i].Status = status
		}
		return
	}
}

// ApplyReaction upserts a user's reaction: one active emoji per user per
// message, last write wins.
func (t *Timeline) ApplyReaction(messageID, userID, emoji string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.messages {
		if t.messages[i].ID != messageID {
			continue
		}
		if t.messages[i].Reactions == nil {
			t.messages[i].Reactions = make(map[string]string)
		}
		t.messages[i].Reactions[userID] = emoji
		return
	}
}

func (t *Timeline) RemoveReaction(messageID, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.messages {
		if t.messages[i].ID == messageID {
			delete(t.messages[i].Reactions, userID)
			return
		}
	}
}

// MarkDeleted applies a deletion. Global deletion tombstones the entry for
// every participant; local deletion adds the acting viewer to the message's
// suppression set and leaves the content intact for everyone else.
func (t *Timeline) MarkDeleted(messageID, byUserID string, forEveryone bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.messages {
		if t.messages[i].ID != messageID {
			continue
		}
		if forEveryone {
			t.messages[i].IsDeleted = true
			t.messages[i].Text = ""
			t.messages[i].Media = nil
			t.messages[i].Reactions = nil
			return
		}
		if !lo.Contains(t.messages[i].DeletedFor, byUserID) {
			t.messages[i].DeletedFor = append(t.messages[i].DeletedFor, byUserID)
		}
		return
	}
}

// Clear empties the sequence but stays attached to the open conversation.
func (t *Timeline) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}

// Snapshot returns a copy of the raw sequence, suppressed entries included.
func (t *Timeline) Snapshot() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Visible returns the sequence as the local viewer sees it: locally
// suppressed messages are filtered out, tombstones remain.
func (t *Timeline) Visible() []domain.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	viewer := t.viewerID
	return lo.Filter(t.messages, func(m domain.Message, _ int) bool {
		return !m.HiddenFor(viewer)
	})
}

func (t *Timeline) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

func (t *Timeline) contains(id string) bool {
	return lo.SomeBy(t.messages, func(m domain.Message) bool { return m.ID == id })
}

func (t *Timeline) drop(id string) {
	t.messages = lo.Filter(t.messages, func(m domain.Message, _ int) bool {
		return m.ID != id
	})
}
