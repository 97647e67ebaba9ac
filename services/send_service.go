package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mychat-client/contract"
	"mychat-client/domain"
	"mychat-client/errors"
	"mychat-client/presence"
	"mychat-client/projection"
)

type ISendService interface {
	SendText(ctx context.Context, recipientID, text string) error
	SendMedia(ctx context.Context, recipientID, filename string, data []byte, kind domain.MessageType) error
}

// SendService drives the send-then-reconcile lifecycle. A text send shows
// up immediately as an optimistic local entry and is replaced by the
// server-confirmed record, or withdrawn on failure with the draft handed
// back to the caller.
type SendService struct {
	api      contract.IChatAPI
	timeline *projection.Timeline
	chats    *projection.ChatList
	typist   *presence.Typist
	log      *slog.Logger

	mu     sync.Mutex
	selfID string
}

func NewSendService(api contract.IChatAPI, timeline *projection.Timeline, chats *projection.ChatList, typist *presence.Typist, log *slog.Logger) *SendService {
	return &SendService{api: api, timeline: timeline, chats: chats, typist: typist, log: log}
}

// SetIdentity records the local sender id. Called when an identity
// becomes available.
func (s *SendService) SetIdentity(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selfID = userID
}

func (s *SendService) identity() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selfID == "" {
		return "", errors.ErrNoIdentity
	}
	return s.selfID, nil
}

// SendText sends a text message. The compose field is considered cleared
// by the caller before this returns; on failure the draft comes back
// inside the SendFailure so it can be restored instead of lost.
func (s *SendService) SendText(ctx context.Context, recipientID, text string) error {
	self, err := s.identity()
	if err != nil {
		return err
	}
	if recipientID == "" {
		return errors.ErrRecipientRequired
	}
	if strings.TrimSpace(text) == "" {
		return errors.ErrEmptyMessage
	}

	pending := domain.Message{
		ID:          localID(),
		SenderID:    self,
		RecipientID: recipientID,
		Type:        domain.TypeText,
		Text:        text,
		CreatedAt:   time.Now(),
	}
	s.timeline.Append(pending)
	s.typist.Sent()

	confirmed, err := s.api.SendMessage(ctx, domain.SendRequest{
		RecipientID: recipientID,
		Text:        text,
		Type:        domain.TypeText,
	})
	if err != nil {
		s.timeline.Abandon(pending.ID)
		return &errors.SendFailure{Draft: text, Err: err}
	}

	s.confirm(ctx, pending.ID, confirmed, self)
	return nil
}

// SendMedia is the two-phase send: upload the raw bytes, then send a
// message referencing the returned descriptor. The message appears only
// once both phases succeeded. A phase-2 failure after a successful upload
// leaves an orphaned asset on the server; that is accepted, not
// compensated.
func (s *SendService) SendMedia(ctx context.Context, recipientID, filename string, data []byte, kind domain.MessageType) error {
	self, err := s.identity()
	if err != nil {
		return err
	}
	if recipientID == "" {
		return errors.ErrRecipientRequired
	}

	upload, err := s.api.UploadMedia(ctx, filename, data, kind)
	if err != nil {
		return fmt.Errorf("media upload: %w", err)
	}

	confirmed, err := s.api.SendMessage(ctx, domain.SendRequest{
		RecipientID: recipientID,
		Type:        upload.Type,
		Media:       upload.AsMedia(),
	})
	if err != nil {
		return &errors.SendFailure{Err: err}
	}

	s.confirm(ctx, "", confirmed, self)
	return nil
}

// confirm installs the server-confirmed record tagged with the local
// identity and status "sent", then refreshes the chat summaries since the
// conversation may have moved to the top.
func (s *SendService) confirm(ctx context.Context, pendingID string, confirmed domain.Message, self string) {
	confirmed.SenderID = self
	confirmed.Status = domain.StatusSent
	if pendingID == "" {
		s.timeline.Append(confirmed)
	} else {
		s.timeline.Confirm(pendingID, confirmed)
	}
	if err := s.chats.Refresh(ctx); err != nil {
		s.log.Warn("chat list refresh failed after send", "error", err)
	}
}

func localID() string {
	return "local-" + uuid.NewString()
}
