package event

import "mychat-client/domain"

// NewMessage carries a freshly delivered message. SenderID is already
// canonical; the raw payload may have embedded the sender object.
type NewMessage struct {
	Message  domain.Message
	SenderID string
}

func (NewMessage) EventType() Type { return NewMessageType }

type StatusUpdate struct {
	MessageID string               `json:"messageId"`
	Status    domain.MessageStatus `json:"status"`
}

func (StatusUpdate) EventType() Type { return StatusUpdateType }

type Typing struct {
	SenderID UserRef `json:"senderId"`
	IsTyping bool    `json:"isTyping"`
}

func (Typing) EventType() Type { return TypingType }

type Recording struct {
	SenderID    UserRef `json:"senderId"`
	IsRecording bool    `json:"isRecording"`
}

func (Recording) EventType() Type { return RecordingType }

type UserStatus struct {
	UserID   UserRef `json:"userId"`
	IsOnline bool    `json:"isOnline"`
}

func (UserStatus) EventType() Type { return UserStatusType }

// ProfileUpdated patches the remote user's profile. Pointer fields
// distinguish "absent" from "cleared".
type ProfileUpdated struct {
	UserID         UserRef `json:"userId"`
	ProfilePicture *string `json:"profilePicture"`
	About          *string `json:"about"`
	Name           *string `json:"name"`
}

func (ProfileUpdated) EventType() Type { return ProfileUpdatedType }

type Reaction struct {
	MessageID string  `json:"messageId"`
	UserID    UserRef `json:"userId"`
	Emoji     string  `json:"emoji"`
}

func (Reaction) EventType() Type { return ReactionType }

type ReactionRemoved struct {
	MessageID string  `json:"messageId"`
	UserID    UserRef `json:"userId"`
}

func (ReactionRemoved) EventType() Type { return ReactionRemovedType }

type MessageDeleted struct {
	MessageID         string  `json:"messageId"`
	DeletedBy         UserRef `json:"deletedBy"`
	DeleteForEveryone bool    `json:"deleteForEveryone"`
}

func (MessageDeleted) EventType() Type { return MessageDeletedType }
