package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"mychat-client/contract"
	"mychat-client/domain"
	"mychat-client/errors"
	"mychat-client/presence"
	"mychat-client/projection"
)

type IChatService interface {
	Open(ctx context.Context, peerID string) error
	CloseActive()
	StartByPhone(ctx context.Context, phoneNumber string) (domain.Conversation, error)
	Archive(ctx context.Context) error
	Delete(ctx context.Context) error
	ClearMessages(ctx context.Context) error
	React(ctx context.Context, messageID, emoji string) error
	Unreact(ctx context.Context, messageID string) error
	DeleteMessage(ctx context.Context, messageID string, forEveryone bool) error
	SaveContactName(ctx context.Context, userID, name string) error
	DeleteContactName(ctx context.Context, userID string) error
}

// ChatService covers conversation-level actions: opening and switching,
// starting a chat by phone number, archive/delete/clear, reactions and
// message deletion. Destructive actions go through the injected confirmer
// before any network call fires.
type ChatService struct {
	api      contract.IChatAPI
	timeline *projection.Timeline
	chats    *projection.ChatList
	tracker  *presence.Tracker
	typist   *presence.Typist
	confirm  contract.Confirmer
	log      *slog.Logger

	mu     sync.Mutex
	selfID string
}

func NewChatService(api contract.IChatAPI, timeline *projection.Timeline, chats *projection.ChatList, tracker *presence.Tracker, typist *presence.Typist, confirm contract.Confirmer, log *slog.Logger) *ChatService {
	return &ChatService{
		api:      api,
		timeline: timeline,
		chats:    chats,
		tracker:  tracker,
		typist:   typist,
		confirm:  confirm,
		log:      log,
	}
}

func (s *ChatService) SetIdentity(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selfID = userID
}

func (s *ChatService) identity() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selfID == "" {
		return "", errors.ErrNoIdentity
	}
	return s.selfID, nil
}

// Open switches the active conversation to a peer. The full history is
// re-fetched every time, nothing is cached across switches; if the fetch
// fails the previous conversation stays open and untouched.
func (s *ChatService) Open(ctx context.Context, peerID string) error {
	if peerID == "" {
		return errors.ErrRecipientRequired
	}
	if err := s.timeline.Load(ctx, peerID); err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	s.typist.SetRecipient(peerID)
	if conv, ok := s.chats.FindByPeer(peerID); ok {
		s.chats.ClearUnread(conv.ID)
	}
	return nil
}

// CloseActive leaves the conversation view without touching the server.
func (s *ChatService) CloseActive() {
	s.timeline.Close()
	s.typist.SetRecipient("")
}

// StartByPhone looks a user up by phone number and starts (or surfaces)
// the conversation with them, opening it on success.
func (s *ChatService) StartByPhone(ctx context.Context, phoneNumber string) (domain.Conversation, error) {
	user, err := s.api.SearchByPhone(ctx, phoneNumber)
	if err != nil {
		return domain.Conversation{}, err
	}
	conv, err := s.api.StartConversation(ctx, user.ID)
	if err != nil {
		return domain.Conversation{}, err
	}
	s.chats.Upsert(conv)
	if err := s.Open(ctx, conv.OtherParticipant.ID); err != nil {
		return domain.Conversation{}, err
	}
	return conv, nil
}

// Archive hides the active conversation. The thread is reactivated by the
// next message in it.
func (s *ChatService) Archive(ctx context.Context) error {
	conv, err := s.activeConversation()
	if err != nil {
		return err
	}
	if err := s.api.ArchiveConversation(ctx, conv.ID); err != nil {
		return err
	}
	s.chats.Hide(conv.ID)
	s.CloseActive()
	return nil
}

// Delete hides the active conversation after explicit confirmation.
func (s *ChatService) Delete(ctx context.Context) error {
	conv, err := s.activeConversation()
	if err != nil {
		return err
	}
	if !s.confirm("Delete this chat? It will be hidden until a new message is sent.") {
		return errors.ErrNotConfirmed
	}
	if err := s.api.DeleteConversation(ctx, conv.ID); err != nil {
		return err
	}
	s.chats.Hide(conv.ID)
	s.CloseActive()
	return nil
}

// ClearMessages empties the active conversation after confirmation.
func (s *ChatService) ClearMessages(ctx context.Context) error {
	conv, err := s.activeConversation()
	if err != nil {
		return err
	}
	if !s.confirm("Clear all messages in this chat?") {
		return errors.ErrNotConfirmed
	}
	if err := s.api.ClearConversation(ctx, conv.ID); err != nil {
		return err
	}
	s.timeline.Clear()
	return nil
}

// React sets the local user's reaction on a message; one emoji per user,
// a second reaction replaces the first.
func (s *ChatService) React(ctx context.Context, messageID, emoji string) error {
	self, err := s.identity()
	if err != nil {
		return err
	}
	if err := s.api.AddReaction(ctx, messageID, emoji); err != nil {
		return err
	}
	s.timeline.ApplyReaction(messageID, self, emoji)
	return nil
}

func (s *ChatService) Unreact(ctx context.Context, messageID string) error {
	self, err := s.identity()
	if err != nil {
		return err
	}
	if err := s.api.RemoveReaction(ctx, messageID); err != nil {
		return err
	}
	s.timeline.RemoveReaction(messageID, self)
	return nil
}

// DeleteMessage deletes for the local viewer only, or for everyone after
// explicit confirmation. Local deletion leaves the other participant's
// view untouched.
func (s *ChatService) DeleteMessage(ctx context.Context, messageID string, forEveryone bool) error {
	self, err := s.identity()
	if err != nil {
		return err
	}
	if forEveryone && !s.confirm("Delete this message for everyone?") {
		return errors.ErrNotConfirmed
	}
	if err := s.api.DeleteMessage(ctx, messageID, forEveryone); err != nil {
		return err
	}
	s.timeline.MarkDeleted(messageID, self, forEveryone)
	return nil
}

// SaveContactName stores a per-contact alias visible only to this viewer.
func (s *ChatService) SaveContactName(ctx context.Context, userID, name string) error {
	if err := s.api.SaveContactName(ctx, userID, name); err != nil {
		return err
	}
	s.chats.ApplySavedName(userID, name)
	return nil
}

func (s *ChatService) DeleteContactName(ctx context.Context, userID string) error {
	if err := s.api.DeleteContactName(ctx, userID); err != nil {
		return err
	}
	s.chats.ApplySavedName(userID, "")
	return nil
}

func (s *ChatService) activeConversation() (domain.Conversation, error) {
	peer := s.timeline.PeerID()
	if peer == "" {
		return domain.Conversation{}, errors.ErrNoActiveChat
	}
	conv, ok := s.chats.FindByPeer(peer)
	if !ok {
		return domain.Conversation{}, errors.ErrNoActiveChat
	}
	return conv, nil
}
