// Package event defines the typed realtime events the client consumes.
// Raw socket payloads are normalized here; downstream code never sees a
// polymorphic sender shape.
package event

type Type string

// Wire event names, shared with the realtime service.
const (
	NewMessageType      Type = "newMessage"
	StatusUpdateType    Type = "messageStatusUpdate"
	TypingType          Type = "typing"
	RecordingType       Type = "recording"
	UserStatusType      Type = "userStatusChange"
	ProfileUpdatedType  Type = "profileUpdated"
	ReactionType        Type = "messageReaction"
	ReactionRemovedType Type = "messageReactionRemoved"
	MessageDeletedType  Type = "messageDeleted"
)

// Event is implemented by every inbound realtime event.
type Event interface {
	EventType() Type
}
