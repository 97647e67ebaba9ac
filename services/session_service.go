package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mychat-client/domain"
	"mychat-client/errors"
	"mychat-client/repositories"
)

// connectionLifecycle is the slice of socket.Lifecycle this service needs.
type connectionLifecycle interface {
	Bind(userID string) error
	Clear()
}

// eventBridge is the subscription surface of bridge.Bridge.
type eventBridge interface {
	Subscribe(selfID string) func()
}

// SessionService owns the identity lifecycle: it persists the snapshot,
// opens the realtime connection when an identity becomes available and
// tears everything down when it is cleared or replaced. It is the single
// place the rest of the engine learns about identity changes, through
// registered hooks.
type SessionService struct {
	repo   repositories.ISessionRepository
	conn   connectionLifecycle
	bridge eventBridge
	log    *slog.Logger

	mu          sync.Mutex
	user        *domain.User
	token       string
	unsubscribe func()
	hooks       []func(domain.User)
}

func NewSessionService(repo repositories.ISessionRepository, conn connectionLifecycle, bridge eventBridge, log *slog.Logger) *SessionService {
	return &SessionService{repo: repo, conn: conn, bridge: bridge, log: log}
}

// OnIdentity registers a hook run whenever an identity becomes available
// (login or restore). Register before calling Restore or Login.
func (s *SessionService) OnIdentity(hook func(domain.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// Restore brings a persisted session back. An expired token clears the
// stored snapshot and reports the session as gone.
func (s *SessionService) Restore() error {
	user, token, err := s.repo.LoadIdentity()
	if err != nil {
		return err
	}
	if expired(token) {
		_ = s.repo.ClearIdentity()
		return errors.ErrSessionExpired
	}
	s.activate(user, token)
	return nil
}

// Login persists the authenticated identity and activates it.
func (s *SessionService) Login(user domain.User, token string) error {
	if user.ID == "" {
		return errors.ErrNoIdentity
	}
	if err := s.repo.SaveIdentity(user, token); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	s.activate(user, token)
	return nil
}

// Logout clears the stored snapshot and closes the realtime connection.
// The theme preference intentionally survives.
func (s *SessionService) Logout() error {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.user = nil
	s.token = ""
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.conn.Clear()
	return s.repo.ClearIdentity()
}

// Identity returns the active identity, if any.
func (s *SessionService) Identity() (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// Token is the bearer token provider for the REST client.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionService) activate(user domain.User, token string) {
	s.mu.Lock()
	if s.unsubscribe != nil {
		// Replacing an identity tears the previous one down first; the
		// connection is never left open against a stale identity.
		s.unsubscribe()
	}
	s.user = &user
	s.token = token
	s.unsubscribe = s.bridge.Subscribe(user.ID)
	hooks := make([]func(domain.User), len(s.hooks))
	copy(hooks, s.hooks)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(user)
	}
	if err := s.conn.Bind(user.ID); err != nil {
		// Logged only; the REST surface keeps working while the
		// transport retries on its own.
		s.log.Error("realtime bind failed", "user", user.ID, "error", err)
	}
}

// expired reports whether the token carries an exp claim in the past. The
// client cannot verify the signature (the key is server-side); it only
// reads the expiry to avoid restoring a dead session.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
