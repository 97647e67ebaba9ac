// Package domain contains core concepts of the messaging client.
// This file defines Message entities and status rules.
package domain

import "time"

type MessageType string

const (
	TypeText  MessageType = "text"
	TypeImage MessageType = "image"
	TypeAudio MessageType = "audio"
	TypeVideo MessageType = "video"
)

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// statusRank orders delivery statuses. Unknown statuses rank below "sent"
// so they can never overwrite a stored one.
var statusRank = map[MessageStatus]int{
	StatusSent:      1,
	StatusDelivered: 2,
	StatusRead:      3,
}

// Advances reports whether moving from the current status to next is a
// forward transition. Status never regresses (sent → delivered → read).
func (s MessageStatus) Advances(next MessageStatus) bool {
	return statusRank[next] > statusRank[s]
}

// Media describes an uploaded asset referenced by a message.
type Media struct {
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// Message is a single entry of a conversation. The ID is assigned by the
// server on confirmation; before that an optimistic local entry carries a
// temporary id (see services.SendService).
type Message struct {
	ID          string        `json:"_id"`
	SenderID    string        `json:"senderId"`
	RecipientID string        `json:"recipientId,omitempty"`
	Type        MessageType   `json:"type"`
	Text        string        `json:"text,omitempty"`
	Media       *Media        `json:"media,omitempty"`
	Status      MessageStatus `json:"status,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	// Reactions maps a user id to that user's single emoji (last write wins).
	Reactions map[string]string `json:"reactions,omitempty"`
	// IsDeleted marks a global tombstone: content removed for all participants.
	IsDeleted bool `json:"isDeleted,omitempty"`
	// DeletedFor lists viewer ids that locally suppress the message.
	DeletedFor []string `json:"deletedFor,omitempty"`
	// ForwardedFrom optionally references the origin message.
	ForwardedFrom string `json:"forwardedFrom,omitempty"`
}

// HiddenFor reports whether the message should be suppressed for a viewer.
// A tombstoned message stays visible (as a deletion marker), a locally
// deleted one disappears for the acting viewer only.
func (m Message) HiddenFor(viewerID string) bool {
	for _, id := range m.DeletedFor {
		if id == viewerID {
			return true
		}
	}
	return false
}
