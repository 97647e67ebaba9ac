//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"mychat-client/domain"
	"mychat-client/errors"
)

type ISessionRepository interface {
	SaveIdentity(user domain.User, token string) error
	LoadIdentity() (domain.User, string, error)
	ClearIdentity() error
	SaveTheme(theme string) error
	LoadTheme() (string, error)
}

const (
	identityKey = "session:identity"
	tokenKey    = "session:token"
	themeKey    = "session:theme"
)

// DefaultTheme applies until the user picks one.
const DefaultTheme = "dark"

// SessionRepository persists the authenticated identity snapshot and the
// theme preference in BadgerDB. Entries have no TTL; they live until an
// explicit logout or clear.
type SessionRepository struct {
	db *badger.DB
}

func NewSessionRepository(db *badger.DB) ISessionRepository {
	return &SessionRepository{db: db}
}

func (s *SessionRepository) SaveIdentity(user domain.User, token string) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(identityKey), data); err != nil {
			return err
		}
		return txn.Set([]byte(tokenKey), []byte(token))
	})
}

func (s *SessionRepository) LoadIdentity() (domain.User, string, error) {
	var user domain.User
	var token string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(identityKey))
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		}); err != nil {
			return err
		}
		item, err = txn.Get([]byte(tokenKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			token = string(val)
			return nil
		})
	})
	if err != nil {
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return domain.User{}, "", errors.ErrNoIdentity
		}
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *SessionRepository) ClearIdentity() error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(identityKey)); err != nil {
			return err
		}
		return txn.Delete([]byte(tokenKey))
	})
}

func (s *SessionRepository) SaveTheme(theme string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(themeKey), []byte(theme))
	})
}

// LoadTheme returns the stored theme, falling back to the default when
// none was saved yet. The theme survives logout on purpose.
func (s *SessionRepository) LoadTheme() (string, error) {
	theme := DefaultTheme
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(themeKey))
		if err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			theme = string(val)
			return nil
		})
	})
	if err != nil {
		return "", err
	}
	return theme, nil
}
