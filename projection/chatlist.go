package projection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"mychat-client/contract"
	"mychat-client/domain"
	"mychat-client/domain/event"
)

// ChatList holds the ordered conversation summaries of the sidebar.
// The server owns ordering and unread counts; Refresh replaces the whole
// snapshot, realtime events patch participants in place between refreshes.
type ChatList struct {
	mu    sync.Mutex
	api   contract.IChatAPI
	log   *slog.Logger
	chats []domain.Conversation
}

func NewChatList(api contract.IChatAPI, log *slog.Logger) *ChatList {
	return &ChatList{api: api, log: log}
}

// Refresh re-fetches the conversation list. Last message and ordering may
// have changed server-side after any send or inbound message.
func (c *ChatList) Refresh(ctx context.Context) error {
	chats, err := c.api.ListConversations(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range chats {
		if chats[i].UnreadCount < 0 {
			chats[i].UnreadCount = 0
		}
	}
	c.chats = chats
	return nil
}

// Upsert adds a conversation to the top of the list if it is not present,
// as when a chat is started explicitly.
func (c *ChatList) Upsert(conv domain.Conversation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lo.SomeBy(c.chats, func(x domain.Conversation) bool { return x.ID == conv.ID }) {
		return
	}
	c.chats = append([]domain.Conversation{conv}, c.chats...)
}

// Hide removes a conversation from the visible list. The thread is not
// destroyed server-side; a new message reactivates it on the next refresh.
func (c *ChatList) Hide(chatID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chats = lo.Filter(c.chats, func(x domain.Conversation, _ int) bool {
		return x.ID != chatID
	})
}

// ApplyUserStatus flips a participant's online flag and stamps last seen.
func (c *ChatList) ApplyUserStatus(userID string, isOnline bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for i := range c.chats {
		if c.chats[i].OtherParticipant.ID == userID {
			c.chats[i].OtherParticipant.IsOnline = isOnline
			c.chats[i].OtherParticipant.LastSeen = &now
		}
	}
}

// ApplyProfileUpdate patches a participant's profile fields in place.
// Absent fields keep their current value; an updated name falls back to the
// phone number when cleared.
func (c *ChatList) ApplyProfileUpdate(ev event.ProfileUpdated) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.chats {
		other := &c.chats[i].OtherParticipant
		if other.ID != ev.UserID.String() {
			continue
		}
		if ev.ProfilePicture != nil {
			other.ProfilePicture = *ev.ProfilePicture
		}
		if ev.About != nil {
			other.About = *ev.About
		}
		if ev.Name != nil {
			other.Name = *ev.Name
		}
	}
}

// ApplySavedName sets or clears the viewer's alias for a participant.
func (c *ChatList) ApplySavedName(userID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.chats {
		if c.chats[i].OtherParticipant.ID == userID {
			c.chats[i].OtherParticipant.SavedName = name
		}
	}
}

// ClearUnread zeroes the unread badge of a conversation, as when it is
// opened. The count never goes negative.
func (c *ChatList) ClearUnread(chatID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.chats {
		if c.chats[i].ID == chatID {
			c.chats[i].UnreadCount = 0
		}
	}
}

// FindByPeer returns the conversation whose other participant is peerID.
func (c *ChatList) FindByPeer(peerID string) (domain.Conversation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.Find(c.chats, func(x domain.Conversation) bool {
		return x.OtherParticipant.ID == peerID
	})
}

func (c *ChatList) Snapshot() []domain.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Conversation, len(c.chats))
	copy(out, c.chats)
	return out
}
