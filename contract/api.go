//go:generate go run go.uber.org/mock/mockgen -source=api.go -destination=../mocks/mock_chat_api.go -package=mocks
package contract

import (
	"context"

	"mychat-client/domain"
)

// IChatAPI is the REST collaborator surface the sync engine consumes.
// Implementations surface failures upward; they never retry on their own.
type IChatAPI interface {
	ListConversations(ctx context.Context) ([]domain.Conversation, error)
	GetHistory(ctx context.Context, peerID string) ([]domain.Message, error)
	SendMessage(ctx context.Context, req domain.SendRequest) (domain.Message, error)
	UploadMedia(ctx context.Context, filename string, data []byte, kind domain.MessageType) (domain.UploadResult, error)

	SearchByPhone(ctx context.Context, phoneNumber string) (domain.User, error)
	StartConversation(ctx context.Context, userID string) (domain.Conversation, error)
	ArchiveConversation(ctx context.Context, chatID string) error
	DeleteConversation(ctx context.Context, chatID string) error
	ClearConversation(ctx context.Context, chatID string) error

	AddReaction(ctx context.Context, messageID, emoji string) error
	RemoveReaction(ctx context.Context, messageID string) error
	DeleteMessage(ctx context.Context, messageID string, forEveryone bool) error

	ListContacts(ctx context.Context) ([]domain.User, error)
	SaveContactName(ctx context.Context, userID, name string) error
	DeleteContactName(ctx context.Context, userID string) error

	GetProfile(ctx context.Context) (domain.User, error)
	GetProfileOf(ctx context.Context, userID string) (domain.User, error)
	UpdateProfile(ctx context.Context, patch domain.ProfileUpdate) (domain.User, error)
	UploadProfilePicture(ctx context.Context, filename string, data []byte) (string, error)
}
