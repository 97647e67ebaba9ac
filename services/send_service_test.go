package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mychat-client/domain"
	apperrors "mychat-client/errors"
	"mychat-client/mocks"
	"mychat-client/presence"
	"mychat-client/projection"
)

type sendFixture struct {
	api      *mocks.MockIChatAPI
	emitter  *mocks.MockEmitter
	timeline *projection.Timeline
	chats    *projection.ChatList
	service  *SendService
}

func newSendFixture(t *testing.T) *sendFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mocks.NewMockIChatAPI(ctrl)
	emitter := mocks.NewMockEmitter(ctrl)
	emitter.EXPECT().Typing(gomock.Any()).Return(nil).AnyTimes()
	emitter.EXPECT().StopTyping(gomock.Any()).Return(nil).AnyTimes()

	timeline := projection.NewTimeline(api, slog.Default())
	chats := projection.NewChatList(api, slog.Default())
	typist := presence.NewTypist(emitter, slog.Default(), time.Minute)
	service := NewSendService(api, timeline, chats, typist, slog.Default())
	service.SetIdentity("self")
	timeline.SetViewer("self")
	return &sendFixture{api: api, emitter: emitter, timeline: timeline, chats: chats, service: service}
}

func Test_SendService_SendText(t *testing.T) {
	ctx := context.Background()

	t.Run("should confirm the optimistic entry with the server record", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		f.api.EXPECT().
			SendMessage(ctx, domain.SendRequest{RecipientID: "alice", Text: "hello", Type: domain.TypeText}).
			Return(domain.Message{ID: "srv-1", Text: "hello", Type: domain.TypeText}, nil).
			Times(1)
		f.api.EXPECT().ListConversations(ctx).Return(nil, nil).Times(1)

		err := f.service.SendText(ctx, "alice", "hello")

		req.NoError(err)
		snapshot := f.timeline.Snapshot()
		req.Len(snapshot, 1)
		req.Equal("srv-1", snapshot[0].ID)
		// The confirmed record is tagged with the local identity and "sent"
		// regardless of what the server response carried.
		req.Equal("self", snapshot[0].SenderID)
		req.Equal(domain.StatusSent, snapshot[0].Status)
	})

	t.Run("should show the optimistic entry while the request is in flight", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		f.api.EXPECT().
			SendMessage(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, sr domain.SendRequest) (domain.Message, error) {
				snapshot := f.timeline.Snapshot()
				req.Len(snapshot, 1)
				req.True(strings.HasPrefix(snapshot[0].ID, "local-"))
				req.Equal("hello", snapshot[0].Text)
				return domain.Message{ID: "srv-1", Text: "hello"}, nil
			}).
			Times(1)
		f.api.EXPECT().ListConversations(ctx).Return(nil, nil).Times(1)

		req.NoError(f.service.SendText(ctx, "alice", "hello"))
	})

	t.Run("should withdraw the entry and hand the draft back on failure", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		f.api.EXPECT().
			SendMessage(ctx, gomock.Any()).
			Return(domain.Message{}, fmt.Errorf("network down")).
			Times(1)

		err := f.service.SendText(ctx, "alice", "my draft")

		var failure *apperrors.SendFailure
		req.True(stderrors.As(err, &failure))
		req.Equal("my draft", failure.Draft)
		req.Equal(0, f.timeline.Size())
	})

	t.Run("should reject an empty message before any network call", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		err := f.service.SendText(ctx, "alice", "   ")

		req.ErrorIs(err, apperrors.ErrEmptyMessage)
		req.Equal(0, f.timeline.Size())
	})

	t.Run("should reject a send without recipient", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		err := f.service.SendText(ctx, "", "hello")

		req.ErrorIs(err, apperrors.ErrRecipientRequired)
	})

	t.Run("should refuse to send without an identity", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)
		f.service.SetIdentity("")

		err := f.service.SendText(ctx, "alice", "hello")

		req.ErrorIs(err, apperrors.ErrNoIdentity)
	})

	t.Run("should keep the entry when the echo already arrived", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		f.api.EXPECT().
			SendMessage(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, sr domain.SendRequest) (domain.Message, error) {
				// The realtime echo lands before the HTTP response.
				f.timeline.Append(domain.Message{ID: "srv-1", SenderID: "self", Text: "hello"})
				return domain.Message{ID: "srv-1", Text: "hello"}, nil
			}).
			Times(1)
		f.api.EXPECT().ListConversations(ctx).Return(nil, nil).Times(1)

		req.NoError(f.service.SendText(ctx, "alice", "hello"))
		req.Equal(1, f.timeline.Size())
	})
}

func Test_SendService_SendMedia(t *testing.T) {
	ctx := context.Background()
	data := []byte{0xFF, 0xD8, 0xFF}

	t.Run("should upload then send referencing the descriptor", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		upload := domain.UploadResult{
			URL:      "https://cdn/photo.jpg",
			MimeType: "image/jpeg",
			Size:     3,
			Type:     domain.TypeImage,
		}
		gomock.InOrder(
			f.api.EXPECT().UploadMedia(ctx, "photo.jpg", data, domain.TypeImage).Return(upload, nil),
			f.api.EXPECT().
				SendMessage(ctx, domain.SendRequest{
					RecipientID: "alice",
					Type:        domain.TypeImage,
					Media:       upload.AsMedia(),
				}).
				Return(domain.Message{ID: "srv-1", Type: domain.TypeImage}, nil),
		)
		f.api.EXPECT().ListConversations(ctx).Return(nil, nil).Times(1)

		err := f.service.SendMedia(ctx, "alice", "photo.jpg", data, domain.TypeImage)

		req.NoError(err)
		snapshot := f.timeline.Snapshot()
		req.Len(snapshot, 1)
		req.Equal("srv-1", snapshot[0].ID)
		req.Equal("self", snapshot[0].SenderID)
	})

	t.Run("should not touch the timeline when the upload fails", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		f.api.EXPECT().
			UploadMedia(ctx, "photo.jpg", data, domain.TypeImage).
			Return(domain.UploadResult{}, fmt.Errorf("upload refused")).
			Times(1)

		err := f.service.SendMedia(ctx, "alice", "photo.jpg", data, domain.TypeImage)

		req.Error(err)
		req.Equal(0, f.timeline.Size())
	})

	t.Run("should report a send failure after a successful upload", func(t *testing.T) {
		req := require.New(t)
		f := newSendFixture(t)

		f.api.EXPECT().
			UploadMedia(ctx, "photo.jpg", data, domain.TypeImage).
			Return(domain.UploadResult{URL: "https://cdn/photo.jpg", Type: domain.TypeImage}, nil).
			Times(1)
		f.api.EXPECT().
			SendMessage(ctx, gomock.Any()).
			Return(domain.Message{}, fmt.Errorf("network down")).
			Times(1)

		err := f.service.SendMedia(ctx, "alice", "photo.jpg", data, domain.TypeImage)

		var failure *apperrors.SendFailure
		req.True(stderrors.As(err, &failure))
		req.Equal(0, f.timeline.Size())
	})
}
