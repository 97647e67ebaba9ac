package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mychat-client/domain"
	"mychat-client/errors"
)

// jpegHeader is enough for content sniffing to classify the bytes as an image.
var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}

type recorded struct {
	method string
	path   string
	auth   string
	body   []byte
}

func newTestClient(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()
	rec := &recorded{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		rec.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, func() string { return "tok-123" }, slog.Default(), 5*time.Second, 0)
	return client, rec
}

func Test_Client_Attaches_Bearer_Token(t *testing.T) {
	req := require.New(t)
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.ListConversations(context.Background())

	req.NoError(err)
	req.Equal("Bearer tok-123", rec.auth)
	req.Equal(http.MethodGet, rec.method)
	req.Equal("/chat", rec.path)
}

func Test_Client_GetHistory(t *testing.T) {
	req := require.New(t)
	client, rec := newTestClient(t, http.StatusOK,
		`[{"_id":"m1","senderId":"alice","type":"text","text":"hello","status":"read"}]`)

	history, err := client.GetHistory(context.Background(), "alice")

	req.NoError(err)
	req.Equal("/chat/alice", rec.path)
	req.Len(history, 1)
	req.Equal("m1", history[0].ID)
	req.Equal(domain.StatusRead, history[0].Status)
}

func Test_Client_SendMessage(t *testing.T) {
	t.Run("should post the payload and decode the confirmation", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusCreated,
			`{"_id":"srv-1","senderId":"self","type":"text","text":"hello"}`)

		confirmed, err := client.SendMessage(context.Background(), domain.SendRequest{
			RecipientID: "alice",
			Text:        "hello",
			Type:        domain.TypeText,
		})

		req.NoError(err)
		req.Equal("/chat/send", rec.path)
		req.Equal("srv-1", confirmed.ID)

		var sent map[string]any
		req.NoError(json.Unmarshal(rec.body, &sent))
		req.Equal("alice", sent["recipientId"])
		req.Equal("hello", sent["text"])
	})

	t.Run("should reject a message with neither text nor media", func(t *testing.T) {
		req := require.New(t)
		client, _ := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.SendMessage(context.Background(), domain.SendRequest{
			RecipientID: "alice",
			Text:        "   ",
			Type:        domain.TypeText,
		})

		req.ErrorIs(err, errors.ErrEmptyMessage)
	})

	t.Run("should reject a message without recipient", func(t *testing.T) {
		req := require.New(t)
		client, _ := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.SendMessage(context.Background(), domain.SendRequest{
			Text: "hello",
			Type: domain.TypeText,
		})

		req.Error(err)
	})
}

func Test_Client_UploadMedia(t *testing.T) {
	t.Run("should refuse an oversized upload locally", func(t *testing.T) {
		req := require.New(t)
		client, _ := newTestClient(t, http.StatusOK, `{}`)

		oversized := make([]byte, DefaultMaxUpload+1)
		_, err := client.UploadMedia(context.Background(), "big.jpg", oversized, domain.TypeImage)

		req.ErrorIs(err, errors.ErrUploadTooLarge)
	})

	t.Run("should refuse a non-image declared as image", func(t *testing.T) {
		req := require.New(t)
		client, _ := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.UploadMedia(context.Background(), "notes.txt", []byte("just text"), domain.TypeImage)

		req.ErrorIs(err, errors.ErrNotAnImage)
	})

	t.Run("should post multipart and decode the descriptor", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusOK,
			`{"url":"https://cdn/photo.jpg","mimeType":"image/jpeg","size":10,"type":"image"}`)

		result, err := client.UploadMedia(context.Background(), "photo.jpg", jpegHeader, domain.TypeImage)

		req.NoError(err)
		req.Equal("/chat/upload-media", rec.path)
		req.Equal("https://cdn/photo.jpg", result.URL)
		req.Equal(domain.TypeImage, result.Type)
	})
}

func Test_Client_SearchByPhone(t *testing.T) {
	t.Run("should validate the number before any call", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.SearchByPhone(context.Background(), "not a number")

		req.Error(err)
		req.Empty(rec.path, "no request must have been made")
	})

	t.Run("should unwrap the user from the response", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusOK,
			`{"user":{"_id":"alice","name":"Alice"},"chatId":"c1"}`)

		user, err := client.SearchByPhone(context.Background(), "+33612345678")

		req.NoError(err)
		req.Equal("/chat/search", rec.path)
		req.Equal("alice", user.ID)
	})
}

func Test_Client_Conversation_Actions_Hit_The_Right_Paths(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		call   func(*Client) error
		method string
		path   string
	}{
		{"archive", func(c *Client) error { return c.ArchiveConversation(ctx, "c1") }, http.MethodPost, "/chat/archive"},
		{"delete", func(c *Client) error { return c.DeleteConversation(ctx, "c1") }, http.MethodPost, "/chat/delete"},
		{"clear", func(c *Client) error { return c.ClearConversation(ctx, "c1") }, http.MethodPost, "/chat/clear"},
		{"react", func(c *Client) error { return c.AddReaction(ctx, "m1", "👍") }, http.MethodPost, "/chat/reaction"},
		{"unreact", func(c *Client) error { return c.RemoveReaction(ctx, "m1") }, http.MethodDelete, "/chat/reaction/m1"},
		{"delete message", func(c *Client) error { return c.DeleteMessage(ctx, "m1", true) }, http.MethodPost, "/chat/message/delete"},
		{"save name", func(c *Client) error { return c.SaveContactName(ctx, "alice", "Boss") }, http.MethodPut, "/chat/users/alice/saved-name"},
		{"delete name", func(c *Client) error { return c.DeleteContactName(ctx, "alice") }, http.MethodDelete, "/chat/users/alice/saved-name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			client, rec := newTestClient(t, http.StatusOK, `{}`)

			req.NoError(tc.call(client))
			req.Equal(tc.method, rec.method)
			req.Equal(tc.path, rec.path)
		})
	}
}

func Test_Client_UpdateProfile(t *testing.T) {
	t.Run("should unwrap the updated user", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusOK,
			`{"user":{"_id":"self","about":"new about"}}`)

		about := "new about"
		user, err := client.UpdateProfile(context.Background(), domain.ProfileUpdate{About: &about})

		req.NoError(err)
		req.Equal(http.MethodPut, rec.method)
		req.Equal("/auth/profile", rec.path)
		req.Equal("new about", user.About)
	})

	t.Run("should reject an over-long about locally", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		about := ""
		for i := 0; i <= domain.AboutMaxLen; i++ {
			about += "a"
		}
		_, err := client.UpdateProfile(context.Background(), domain.ProfileUpdate{About: &about})

		req.ErrorIs(err, errors.ErrAboutTooLong)
		req.Empty(rec.path)
	})

	t.Run("should reject an unknown theme locally", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusOK, `{}`)

		theme := "solarized"
		_, err := client.UpdateProfile(context.Background(), domain.ProfileUpdate{Theme: &theme})

		req.Error(err)
		req.Empty(rec.path)
	})
}

func Test_Client_UploadProfilePicture(t *testing.T) {
	t.Run("should accept only images", func(t *testing.T) {
		req := require.New(t)
		client, _ := newTestClient(t, http.StatusOK, `{}`)

		_, err := client.UploadProfilePicture(context.Background(), "cv.pdf", []byte("%PDF-1.4"))

		req.ErrorIs(err, errors.ErrNotAnImage)
	})

	t.Run("should decode the new picture url", func(t *testing.T) {
		req := require.New(t)
		client, rec := newTestClient(t, http.StatusOK, `{"profilePicture":"https://cdn/me.jpg"}`)

		url, err := client.UploadProfilePicture(context.Background(), "me.jpg", jpegHeader)

		req.NoError(err)
		req.Equal("/auth/profile/picture", rec.path)
		req.Equal("https://cdn/me.jpg", url)
	})
}

func Test_Client_Maps_Remote_Errors(t *testing.T) {
	t.Run("should surface the server error message", func(t *testing.T) {
		req := require.New(t)
		client, _ := newTestClient(t, http.StatusForbidden, `{"error":"chat is archived"}`)

		err := client.ArchiveConversation(context.Background(), "c1")

		req.ErrorIs(err, errors.ErrActionFailed)
		req.Contains(err.Error(), "chat is archived")
	})

	t.Run("should fall back to the status line without a body", func(t *testing.T) {
		req := require.New(t)
		client, _ := newTestClient(t, http.StatusInternalServerError, ``)

		err := client.ArchiveConversation(context.Background(), "c1")

		req.ErrorIs(err, errors.ErrActionFailed)
	})
}
