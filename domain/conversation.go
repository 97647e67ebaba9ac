package domain

// Conversation is a two-party thread summary as served by the chat list.
// OtherParticipant.ID is the correlation key used across presence, profile
// and message events.
type Conversation struct {
	ID               string   `json:"_id"`
	OtherParticipant User     `json:"otherParticipant"`
	LastMessage      *Message `json:"lastMessage,omitempty"`
	UnreadCount      int      `json:"unreadCount"`
	Archived         bool     `json:"archived,omitempty"`
	Deleted          bool     `json:"deleted,omitempty"`
}
