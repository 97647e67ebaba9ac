package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mychat-client/domain"
	apperrors "mychat-client/errors"
	"mychat-client/mocks"
)

type fakeConn struct {
	bound   []string
	cleared int
}

func (f *fakeConn) Bind(userID string) error {
	f.bound = append(f.bound, userID)
	return nil
}

func (f *fakeConn) Clear() { f.cleared++ }

type fakeBridge struct {
	subscribed   []string
	unsubscribed int
}

func (f *fakeBridge) Subscribe(selfID string) func() {
	f.subscribed = append(f.subscribed, selfID)
	return func() { f.unsubscribed++ }
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "self",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newSessionFixture(t *testing.T) (*mocks.MockISessionRepository, *fakeConn, *fakeBridge, *SessionService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockISessionRepository(ctrl)
	conn := &fakeConn{}
	br := &fakeBridge{}
	return repo, conn, br, NewSessionService(repo, conn, br, slog.Default())
}

func Test_SessionService_Login(t *testing.T) {
	t.Run("should persist the identity and open the realtime pipeline", func(t *testing.T) {
		req := require.New(t)
		repo, conn, br, service := newSessionFixture(t)

		var hooked []string
		service.OnIdentity(func(u domain.User) { hooked = append(hooked, u.ID) })

		user := domain.User{ID: "self", Name: "Me"}
		repo.EXPECT().SaveIdentity(user, "token-1").Return(nil).Times(1)

		req.NoError(service.Login(user, "token-1"))

		identity, ok := service.Identity()
		req.True(ok)
		req.Equal("self", identity.ID)
		req.Equal("token-1", service.Token())
		req.Equal([]string{"self"}, br.subscribed)
		req.Equal([]string{"self"}, conn.bound)
		req.Equal([]string{"self"}, hooked)
	})

	t.Run("should refuse an identity without id", func(t *testing.T) {
		req := require.New(t)
		_, _, _, service := newSessionFixture(t)

		req.ErrorIs(service.Login(domain.User{}, "token-1"), apperrors.ErrNoIdentity)
	})

	t.Run("should tear down the previous identity when replaced", func(t *testing.T) {
		req := require.New(t)
		repo, _, br, service := newSessionFixture(t)

		repo.EXPECT().SaveIdentity(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		req.NoError(service.Login(domain.User{ID: "first"}, "t1"))
		req.NoError(service.Login(domain.User{ID: "second"}, "t2"))

		req.Equal(1, br.unsubscribed)
		req.Equal([]string{"first", "second"}, br.subscribed)
	})
}

func Test_SessionService_Restore(t *testing.T) {
	t.Run("should reactivate a stored session with a live token", func(t *testing.T) {
		req := require.New(t)
		repo, conn, _, service := newSessionFixture(t)

		token := signedToken(t, time.Now().Add(time.Hour))
		repo.EXPECT().LoadIdentity().
			Return(domain.User{ID: "self"}, token, nil).
			Times(1)

		req.NoError(service.Restore())

		req.Equal(token, service.Token())
		req.Equal([]string{"self"}, conn.bound)
	})

	t.Run("should clear the snapshot when the token expired", func(t *testing.T) {
		req := require.New(t)
		repo, conn, _, service := newSessionFixture(t)

		token := signedToken(t, time.Now().Add(-time.Hour))
		repo.EXPECT().LoadIdentity().
			Return(domain.User{ID: "self"}, token, nil).
			Times(1)
		repo.EXPECT().ClearIdentity().Return(nil).Times(1)

		err := service.Restore()

		req.ErrorIs(err, apperrors.ErrSessionExpired)
		_, ok := service.Identity()
		req.False(ok)
		req.Empty(conn.bound)
	})

	t.Run("should propagate a missing stored session", func(t *testing.T) {
		req := require.New(t)
		repo, _, _, service := newSessionFixture(t)

		repo.EXPECT().LoadIdentity().
			Return(domain.User{}, "", apperrors.ErrNoIdentity).
			Times(1)

		req.ErrorIs(service.Restore(), apperrors.ErrNoIdentity)
	})

	t.Run("should accept an opaque token without exp claim", func(t *testing.T) {
		req := require.New(t)
		repo, _, _, service := newSessionFixture(t)

		repo.EXPECT().LoadIdentity().
			Return(domain.User{ID: "self"}, "not-a-jwt", nil).
			Times(1)

		req.NoError(service.Restore())
	})
}

func Test_SessionService_Logout(t *testing.T) {
	req := require.New(t)
	repo, conn, br, service := newSessionFixture(t)

	repo.EXPECT().SaveIdentity(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	repo.EXPECT().ClearIdentity().Return(nil).Times(1)
	req.NoError(service.Login(domain.User{ID: "self"}, "token-1"))

	req.NoError(service.Logout())

	_, ok := service.Identity()
	req.False(ok)
	req.Empty(service.Token())
	req.Equal(1, br.unsubscribed)
	req.Equal(1, conn.cleared)
}
