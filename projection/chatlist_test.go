package projection

import (
	"context"
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mychat-client/domain"
	"mychat-client/domain/event"
	"mychat-client/mocks"
)

func conversation(id, peerID, peerName string) domain.Conversation {
	return domain.Conversation{
		ID: id,
		OtherParticipant: domain.User{
			ID:          peerID,
			Name:        peerName,
			PhoneNumber: "+33600000000",
		},
	}
}

func Test_ChatList_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockIChatAPI(ctrl)
	chats := NewChatList(api, slog.Default())
	ctx := context.Background()

	t.Run("should replace the snapshot with the fetched list", func(t *testing.T) {
		req := require.New(t)
		api.EXPECT().ListConversations(ctx).
			Return([]domain.Conversation{
				conversation("c1", "alice", "Alice"),
				conversation("c2", "bob", "Bob"),
			}, nil).
			Times(1)

		req.NoError(chats.Refresh(ctx))
		req.Len(chats.Snapshot(), 2)
	})

	t.Run("should clamp negative unread counts to zero", func(t *testing.T) {
		req := require.New(t)
		broken := conversation("c1", "alice", "Alice")
		broken.UnreadCount = -3
		api.EXPECT().ListConversations(ctx).
			Return([]domain.Conversation{broken}, nil).
			Times(1)

		req.NoError(chats.Refresh(ctx))
		req.Equal(0, chats.Snapshot()[0].UnreadCount)
	})
}

func Test_ChatList_Upsert(t *testing.T) {
	req := require.New(t)
	chats := NewChatList(nil, slog.Default())

	chats.Upsert(conversation("c1", "alice", "Alice"))
	chats.Upsert(conversation("c2", "bob", "Bob"))
	chats.Upsert(conversation("c1", "alice", "Alice"))

	snapshot := chats.Snapshot()
	req.Len(snapshot, 2)
	req.Equal("c2", snapshot[0].ID, "a started chat goes to the top")
}

func Test_ChatList_Hide(t *testing.T) {
	req := require.New(t)
	chats := NewChatList(nil, slog.Default())
	chats.Upsert(conversation("c1", "alice", "Alice"))
	chats.Upsert(conversation("c2", "bob", "Bob"))

	chats.Hide("c1")

	snapshot := chats.Snapshot()
	req.Len(snapshot, 1)
	req.Equal("c2", snapshot[0].ID)
}

func Test_ChatList_ApplyUserStatus(t *testing.T) {
	req := require.New(t)
	chats := NewChatList(nil, slog.Default())
	chats.Upsert(conversation("c1", "alice", "Alice"))

	chats.ApplyUserStatus("alice", true)
	alice, found := chats.FindByPeer("alice")
	req.True(found)
	req.True(alice.OtherParticipant.IsOnline)

	chats.ApplyUserStatus("alice", false)
	alice, _ = chats.FindByPeer("alice")
	req.False(alice.OtherParticipant.IsOnline)
	req.NotNil(alice.OtherParticipant.LastSeen)
}

func Test_ChatList_ApplyProfileUpdate_Patches_Present_Fields_Only(t *testing.T) {
	req := require.New(t)
	chats := NewChatList(nil, slog.Default())
	conv := conversation("c1", "alice", "Alice")
	conv.OtherParticipant.About = "old about"
	conv.OtherParticipant.ProfilePicture = "old.png"
	chats.Upsert(conv)

	chats.ApplyProfileUpdate(event.ProfileUpdated{
		UserID: "alice",
		About:  lo.ToPtr("new about"),
	})

	alice, _ := chats.FindByPeer("alice")
	req.Equal("new about", alice.OtherParticipant.About)
	req.Equal("old.png", alice.OtherParticipant.ProfilePicture)
	req.Equal("Alice", alice.OtherParticipant.Name)
}

func Test_ChatList_ApplySavedName_Overrides_Display_Name(t *testing.T) {
	req := require.New(t)
	chats := NewChatList(nil, slog.Default())
	chats.Upsert(conversation("c1", "alice", "Alice"))

	chats.ApplySavedName("alice", "Boss")
	alice, _ := chats.FindByPeer("alice")
	req.Equal("Boss", alice.OtherParticipant.DisplayName())

	chats.ApplySavedName("alice", "")
	alice, _ = chats.FindByPeer("alice")
	req.Equal("Alice", alice.OtherParticipant.DisplayName())
}

func Test_ChatList_ClearUnread(t *testing.T) {
	req := require.New(t)
	chats := NewChatList(nil, slog.Default())
	conv := conversation("c1", "alice", "Alice")
	conv.UnreadCount = 4
	chats.Upsert(conv)

	chats.ClearUnread("c1")

	req.Equal(0, chats.Snapshot()[0].UnreadCount)
}
