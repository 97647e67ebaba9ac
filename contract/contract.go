//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"mychat-client/domain/event"
)

// EventSink consumes normalized realtime events. Implementations must not
// panic past their boundary; a sink failure is logged and dropped.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// Emitter sends outbound realtime signals over the live connection.
// Errors are diagnostic only and never block the caller's flow.
type Emitter interface {
	Typing(recipientID string) error
	StopTyping(recipientID string) error
	Recording(recipientID string) error
	StopRecording(recipientID string) error
	MessageRead(messageID, senderID string) error
}

// Confirmer gates destructive actions (delete chat, clear chat,
// delete-for-everyone) behind an explicit user confirmation.
type Confirmer func(prompt string) bool
