// Package bridge normalizes raw realtime envelopes into typed events,
// routes them to the stores and fans them out to the attached sinks. It is
// the only place that inspects wire payload shapes; malformed events are
// dropped here with a diagnostic log and never propagate further.
package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"mychat-client/contract"
	"mychat-client/domain"
	"mychat-client/domain/event"
	"mychat-client/errors"
	"mychat-client/presence"
	"mychat-client/projection"
	"mychat-client/socket"
)

// refreshTimeout bounds the chat-list refresh triggered by an inbound
// message so a slow listing cannot stall the dispatch loop forever.
const refreshTimeout = 10 * time.Second

// Bridge fans inbound events out to the timeline, the chat list and the
// presence tracker, then to any attached sinks. Dispatch runs on the
// connection's read loop, so store mutations are applied strictly in
// arrival order.
type Bridge struct {
	log      *slog.Logger
	timeline *projection.Timeline
	chats    *projection.ChatList
	tracker  *presence.Tracker
	emitter  contract.Emitter

	mu         sync.Mutex
	selfID     string
	subscribed bool
	sinks      []contract.EventSink
}

func New(timeline *projection.Timeline, chats *projection.ChatList, tracker *presence.Tracker, emitter contract.Emitter, log *slog.Logger) *Bridge {
	return &Bridge{
		log:      log,
		timeline: timeline,
		chats:    chats,
		tracker:  tracker,
		emitter:  emitter,
	}
}

// Subscribe attaches the bridge to an identity and starts routing.
// The returned unsubscribe must be called on logout or teardown; a
// dangling subscription would otherwise keep mutating stores for a
// stale identity.
func (b *Bridge) Subscribe(selfID string) (unsubscribe func()) {
	b.mu.Lock()
	b.selfID = selfID
	b.subscribed = true
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		b.subscribed = false
		b.selfID = ""
		b.mu.Unlock()
	}
}

// AttachSink registers a consumer for every normalized event. Sinks run
// on the dispatch loop after the stores were updated; a sink error is
// logged and dropped.
func (b *Bridge) AttachSink(sink contract.EventSink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, sink)
}

// Dispatch consumes one raw envelope. It never panics or returns an error
// past this boundary: anomalies are logged and dropped.
func (b *Bridge) Dispatch(env socket.Envelope) {
	b.mu.Lock()
	self := b.selfID
	active := b.subscribed
	sinks := make([]contract.EventSink, len(b.sinks))
	copy(sinks, b.sinks)
	b.mu.Unlock()
	if !active {
		return
	}

	ev, ok := b.normalize(env)
	if !ok {
		return
	}
	// Own profile state comes from REST responses; the echo is noise.
	if profile, isProfile := ev.(event.ProfileUpdated); isProfile && profile.UserID.String() == self {
		return
	}

	b.route(ev, self)
	b.publish(sinks, ev)
}

// normalize decodes an envelope into its typed event, rejecting payloads
// that miss required fields.
func (b *Bridge) normalize(env socket.Envelope) (event.Event, bool) {
	switch event.Type(env.Event) {
	case event.NewMessageType:
		return b.normalizeNewMessage(env.Data)
	case event.StatusUpdateType:
		var ev event.StatusUpdate
		if !b.decode(env, &ev) || ev.MessageID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	case event.TypingType:
		var ev event.Typing
		if !b.decode(env, &ev) || ev.SenderID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	case event.RecordingType:
		var ev event.Recording
		if !b.decode(env, &ev) || ev.SenderID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	case event.UserStatusType:
		var ev event.UserStatus
		if !b.decode(env, &ev) || ev.UserID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	case event.ProfileUpdatedType:
		var ev event.ProfileUpdated
		if !b.decode(env, &ev) || ev.UserID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	case event.ReactionType:
		var ev event.Reaction
		if !b.decode(env, &ev) || ev.MessageID == "" || ev.UserID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	case event.ReactionRemovedType:
		var ev event.ReactionRemoved
		if !b.decode(env, &ev) || ev.MessageID == "" || ev.UserID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	case event.MessageDeletedType:
		var ev event.MessageDeleted
		if !b.decode(env, &ev) || ev.MessageID == "" {
			return b.dropMalformed(env)
		}
		return ev, true
	default:
		b.log.Debug("unexpected realtime event dropped", "event", env.Event)
		return nil, false
	}
}

// wireMessage shadows the polymorphic senderId so the embedded message
// never sees the raw shape.
type wireMessage struct {
	domain.Message
	SenderID event.UserRef `json:"senderId"`
}

func (b *Bridge) normalizeNewMessage(data json.RawMessage) (event.Event, bool) {
	var wire wireMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		b.log.Warn(errors.ErrMalformedEvent.Error(), "event", event.NewMessageType, "error", err)
		return nil, false
	}
	sender := wire.SenderID.String()
	msg := wire.Message
	msg.SenderID = sender
	if msg.ID == "" || sender == "" {
		b.log.Warn(errors.ErrMalformedEvent.Error(), "event", event.NewMessageType)
		return nil, false
	}
	return event.NewMessage{Message: msg, SenderID: sender}, true
}

func (b *Bridge) route(e event.Event, self string) {
	switch ev := e.(type) {
	case event.NewMessage:
		b.onNewMessage(ev, self)
	case event.StatusUpdate:
		b.timeline.ApplyStatus(ev.MessageID, ev.Status)
	case event.Typing:
		b.tracker.SetTyping(ev.SenderID.String(), ev.IsTyping)
	case event.Recording:
		b.tracker.SetRecording(ev.SenderID.String(), ev.IsRecording)
	case event.UserStatus:
		b.chats.ApplyUserStatus(ev.UserID.String(), ev.IsOnline)
	case event.ProfileUpdated:
		b.chats.ApplyProfileUpdate(ev)
	case event.Reaction:
		b.timeline.ApplyReaction(ev.MessageID, ev.UserID.String(), ev.Emoji)
	case event.ReactionRemoved:
		b.timeline.RemoveReaction(ev.MessageID, ev.UserID.String())
	case event.MessageDeleted:
		b.timeline.MarkDeleted(ev.MessageID, ev.DeletedBy.String(), ev.DeleteForEveryone)
	}
}

func (b *Bridge) onNewMessage(ev event.NewMessage, self string) {
	// A message from a peer supersedes their typing/recording signals.
	b.tracker.ClearFor(ev.SenderID)

	peer := b.timeline.PeerID()
	if peer != "" && (ev.SenderID == peer || ev.SenderID == self) {
		if b.timeline.Append(ev.Message) && ev.SenderID == peer {
			if err := b.emitter.MessageRead(ev.Message.ID, ev.SenderID); err != nil {
				b.log.Warn("read receipt not sent", "message", ev.Message.ID, "error", err)
			}
		}
	}

	// Last message and ordering may have changed; refresh the summaries.
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if err := b.chats.Refresh(ctx); err != nil {
		b.log.Warn("chat list refresh failed", "error", err)
	}
}

func (b *Bridge) publish(sinks []contract.EventSink, ev event.Event) {
	if len(sinks) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	for _, sink := range sinks {
		if err := sink.Consume(ctx, ev); err != nil {
			b.log.Warn("event sink failed", "event", ev.EventType(), "error", err)
		}
	}
}

func (b *Bridge) decode(env socket.Envelope, into any) bool {
	return json.Unmarshal(env.Data, into) == nil
}

func (b *Bridge) dropMalformed(env socket.Envelope) (event.Event, bool) {
	b.log.Warn(errors.ErrMalformedEvent.Error(), "event", env.Event)
	return nil, false
}
