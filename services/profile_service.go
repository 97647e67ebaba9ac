package services

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"mychat-client/contract"
	"mychat-client/domain"
	"mychat-client/errors"
	"mychat-client/repositories"
)

type IProfileService interface {
	Own(ctx context.Context) (domain.User, error)
	Of(ctx context.Context, userID string) (domain.User, error)
	UpdateAbout(ctx context.Context, about string) (domain.User, error)
	UpdatePicture(ctx context.Context, filename string, data []byte) (string, error)
	Theme() string
	UpdateTheme(ctx context.Context, theme string) error
}

// ProfileService wraps the profile endpoints and the locally persisted
// theme preference.
type ProfileService struct {
	api      contract.IChatAPI
	sessions repositories.ISessionRepository
	log      *slog.Logger
}

func NewProfileService(api contract.IChatAPI, sessions repositories.ISessionRepository, log *slog.Logger) *ProfileService {
	return &ProfileService{api: api, sessions: sessions, log: log}
}

func (s *ProfileService) Own(ctx context.Context) (domain.User, error) {
	return s.api.GetProfile(ctx)
}

// Of fetches another user's profile, merged with the viewer's saved
// contact alias when one exists.
func (s *ProfileService) Of(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.api.GetProfileOf(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	contacts, err := s.api.ListContacts(ctx)
	if err != nil {
		// The alias is decoration; the profile itself is still usable.
		s.log.Debug("contact list unavailable", "error", err)
		return user, nil
	}
	if contact, ok := lo.Find(contacts, func(c domain.User) bool { return c.ID == userID }); ok {
		user.SavedName = contact.SavedName
	}
	return user, nil
}

// UpdateAbout replaces the about text, rejected locally beyond the
// 139-character cap before any network call.
func (s *ProfileService) UpdateAbout(ctx context.Context, about string) (domain.User, error) {
	if len([]rune(about)) > domain.AboutMaxLen {
		return domain.User{}, errors.ErrAboutTooLong
	}
	return s.api.UpdateProfile(ctx, domain.ProfileUpdate{About: &about})
}

func (s *ProfileService) UpdatePicture(ctx context.Context, filename string, data []byte) (string, error) {
	return s.api.UploadProfilePicture(ctx, filename, data)
}

// Theme returns the persisted preference, defaulting when none is stored.
func (s *ProfileService) Theme() string {
	theme, err := s.sessions.LoadTheme()
	if err != nil {
		s.log.Warn("theme load failed", "error", err)
		return repositories.DefaultTheme
	}
	return theme
}

// UpdateTheme applies the preference locally first, then best-effort syncs
// it to the profile; a sync failure does not undo the local choice.
func (s *ProfileService) UpdateTheme(ctx context.Context, theme string) error {
	if err := s.sessions.SaveTheme(theme); err != nil {
		return err
	}
	if _, err := s.api.UpdateProfile(ctx, domain.ProfileUpdate{Theme: &theme}); err != nil {
		s.log.Warn("theme not synced to profile", "error", err)
	}
	return nil
}
