// Package rest implements the REST collaborator client. It validates
// requests before any network call, attaches the bearer token, and maps
// failures onto the client error taxonomy. It never retries.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"mychat-client/contract"
	"mychat-client/domain"
	"mychat-client/errors"
)

// DefaultMaxUpload caps media and profile picture uploads.
const DefaultMaxUpload = 10 << 20

// TokenProvider returns the current bearer token, or "" when logged out.
type TokenProvider func() string

type Client struct {
	baseURL   string
	http      *http.Client
	token     TokenProvider
	log       *slog.Logger
	validate  *validator.Validate
	maxUpload int64
}

var _ contract.IChatAPI = (*Client)(nil)

func NewClient(baseURL string, token TokenProvider, log *slog.Logger, timeout time.Duration, maxUpload int64) *Client {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		token:     token,
		log:       log,
		validate:  validator.New(),
		maxUpload: maxUpload,
	}
}

func (c *Client) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	var out []domain.Conversation
	if err := c.do(ctx, http.MethodGet, "/chat", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetHistory(ctx context.Context, peerID string) ([]domain.Message, error) {
	var out []domain.Message
	if err := c.do(ctx, http.MethodGet, "/chat/"+peerID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, req domain.SendRequest) (domain.Message, error) {
	if err := c.validate.Struct(req); err != nil {
		return domain.Message{}, err
	}
	if strings.TrimSpace(req.Text) == "" && req.Media == nil {
		return domain.Message{}, errors.ErrEmptyMessage
	}
	var out domain.Message
	if err := c.do(ctx, http.MethodPost, "/chat/send", req, &out); err != nil {
		return domain.Message{}, err
	}
	return out, nil
}

// UploadMedia pushes raw bytes to the media endpoint and returns the
// descriptor the follow-up send must reference. The sniffed content type
// must agree with the declared kind.
func (c *Client) UploadMedia(ctx context.Context, filename string, data []byte, kind domain.MessageType) (domain.UploadResult, error) {
	if int64(len(data)) > c.maxUpload {
		return domain.UploadResult{}, errors.ErrUploadTooLarge
	}
	mime := mimetype.Detect(data)
	if kind == domain.TypeImage && !strings.HasPrefix(mime.String(), "image/") {
		return domain.UploadResult{}, errors.ErrNotAnImage
	}
	var out domain.UploadResult
	if err := c.doMultipart(ctx, "/chat/upload-media", filename, data, string(kind), &out); err != nil {
		return domain.UploadResult{}, err
	}
	return out, nil
}

func (c *Client) SearchByPhone(ctx context.Context, phoneNumber string) (domain.User, error) {
	if err := c.validate.Var(phoneNumber, "required,e164"); err != nil {
		return domain.User{}, err
	}
	var out struct {
		User   domain.User `json:"user"`
		ChatID string      `json:"chatId"`
	}
	body := map[string]string{"phoneNumber": phoneNumber}
	if err := c.do(ctx, http.MethodPost, "/chat/search", body, &out); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

func (c *Client) StartConversation(ctx context.Context, userID string) (domain.Conversation, error) {
	var out domain.Conversation
	body := map[string]string{"userId": userID}
	if err := c.do(ctx, http.MethodPost, "/chat/start", body, &out); err != nil {
		return domain.Conversation{}, err
	}
	return out, nil
}

func (c *Client) ArchiveConversation(ctx context.Context, chatID string) error {
	return c.do(ctx, http.MethodPost, "/chat/archive", map[string]string{"chatId": chatID}, nil)
}

func (c *Client) DeleteConversation(ctx context.Context, chatID string) error {
	return c.do(ctx, http.MethodPost, "/chat/delete", map[string]string{"chatId": chatID}, nil)
}

func (c *Client) ClearConversation(ctx context.Context, chatID string) error {
	return c.do(ctx, http.MethodPost, "/chat/clear", map[string]string{"chatId": chatID}, nil)
}

func (c *Client) AddReaction(ctx context.Context, messageID, emoji string) error {
	body := map[string]string{"messageId": messageID, "emoji": emoji}
	return c.do(ctx, http.MethodPost, "/chat/reaction", body, nil)
}

func (c *Client) RemoveReaction(ctx context.Context, messageID string) error {
	return c.do(ctx, http.MethodDelete, "/chat/reaction/"+messageID, nil, nil)
}

func (c *Client) DeleteMessage(ctx context.Context, messageID string, forEveryone bool) error {
	body := map[string]any{"messageId": messageID, "deleteForEveryone": forEveryone}
	return c.do(ctx, http.MethodPost, "/chat/message/delete", body, nil)
}

func (c *Client) ListContacts(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := c.do(ctx, http.MethodGet, "/chat/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SaveContactName(ctx context.Context, userID, name string) error {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPut, "/chat/users/"+userID+"/saved-name", body, nil)
}

func (c *Client) DeleteContactName(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/chat/users/"+userID+"/saved-name", nil, nil)
}

func (c *Client) GetProfile(ctx context.Context) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (c *Client) GetProfileOf(ctx context.Context, userID string) (domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile/"+userID, nil, &out); err != nil {
		return domain.User{}, err
	}
	return out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, patch domain.ProfileUpdate) (domain.User, error) {
	if patch.About != nil && len([]rune(*patch.About)) > domain.AboutMaxLen {
		return domain.User{}, errors.ErrAboutTooLong
	}
	if err := c.validate.Struct(patch); err != nil {
		return domain.User{}, err
	}
	var out struct {
		User domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", patch, &out); err != nil {
		return domain.User{}, err
	}
	return out.User, nil
}

func (c *Client) UploadProfilePicture(ctx context.Context, filename string, data []byte) (string, error) {
	if int64(len(data)) > c.maxUpload {
		return "", errors.ErrUploadTooLarge
	}
	if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
		return "", errors.ErrNotAnImage
	}
	var out struct {
		ProfilePicture string `json:"profilePicture"`
	}
	if err := c.doMultipart(ctx, "/auth/profile/picture", filename, data, "profile", &out); err != nil {
		return "", err
	}
	return out.ProfilePicture, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *Client) doMultipart(ctx context.Context, path, filename string, data []byte, kind string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := writer.WriteField("type", kind); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var remote struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&remote)
		if remote.Error == "" {
			remote.Error = resp.Status
		}
		c.log.Debug("request rejected", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s", errors.ErrActionFailed, remote.Error)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
