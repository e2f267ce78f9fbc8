//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"little-lemon/internal/domain"
	"little-lemon/internal/domain/user"
	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/pkg/jwt"
	"little-lemon/internal/pkg/password"
	"little-lemon/internal/usecase/commands"
	"little-lemon/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

func newAuthCommands(uow *fakeUoW) (commands.AuthCommands, *jwt.Service) {
	svc := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(uow, svc, discardLogger), svc
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()
	req := commands.RegisterRequest{Username: "guest", Password: testPassword, Email: "guest@example.com"}

	t.Run("success", func(t *testing.T) {
		uow := newFakeUoW()
		var created *user.User
		uow.users.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			created = u
			return u.Username().Value() == "guest" && u.PasswordHash() != testPassword && !u.Roles().IsManager()
		})).Return(nil)
		cmds, _ := newAuthCommands(uow)

		res, err := cmds.Register(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), res.UserID)
		assert.NoError(t, password.ComparePassword(created.PasswordHash(), testPassword))
		uow.AssertExpectations(t)
	})

	t.Run("invalid fields are reported together", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newAuthCommands(uow)

		_, err := cmds.Register(ctx, commands.RegisterRequest{Username: "bad name!", Password: "short", Email: "nope"})

		var verr *domain.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.ElementsMatch(t, []string{"username", "password", "email"}, keys(verr.Fields))
		uow.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("email is optional", func(t *testing.T) {
		uow := newFakeUoW()
		uow.users.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Email() == nil
		})).Return(nil)
		cmds, _ := newAuthCommands(uow)

		_, err := cmds.Register(ctx, commands.RegisterRequest{Username: "guest", Password: testPassword})

		require.NoError(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		uow := newFakeUoW()
		uow.users.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(repoErr(infra.KindDuplicateKey))
		cmds, _ := newAuthCommands(uow)

		_, err := cmds.Register(ctx, req)

		assert.True(t, errs.Is(err, commands.ErrDuplicateUsername))
		var verr *domain.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.Contains(t, verr.Fields, "username")
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword(testPassword)
	require.NoError(t, err)

	active := builder.NewUserBuilder().WithPasswordHash(hash).BuildSnapshot()
	inactive := builder.NewUserBuilder().WithPasswordHash(hash).AsInactive().BuildSnapshot()

	t.Run("success", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("UserByUsername", mock.Anything, "guest").Return(active, nil)
		cmds, svc := newAuthCommands(uow)

		res, err := cmds.Login(ctx, commands.LoginRequest{Username: "guest", Password: testPassword})

		require.NoError(t, err)
		assert.Equal(t, active.ID, res.UserID)
		claims, err := svc.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, active.ID, claims.UserID)
	})

	tests := []struct {
		name    string
		req     commands.LoginRequest
		setup   func(uow *fakeUoW)
		wantErr error
	}{
		{
			name: "unknown user",
			req:  commands.LoginRequest{Username: "ghost", Password: testPassword},
			setup: func(uow *fakeUoW) {
				uow.reads.On("UserByUsername", mock.Anything, "ghost").Return(nil, repoErr(infra.KindNotFound))
			},
			wantErr: commands.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  commands.LoginRequest{Username: "guest", Password: "wrong-password"},
			setup: func(uow *fakeUoW) {
				uow.reads.On("UserByUsername", mock.Anything, "guest").Return(active, nil)
			},
			wantErr: commands.ErrInvalidCredentials,
		},
		{
			name: "inactive user",
			req:  commands.LoginRequest{Username: "guest", Password: testPassword},
			setup: func(uow *fakeUoW) {
				uow.reads.On("UserByUsername", mock.Anything, "guest").Return(inactive, nil)
			},
			wantErr: commands.ErrUserInactive,
		},
		{
			name:    "empty credentials",
			req:     commands.LoginRequest{Username: " ", Password: ""},
			setup:   func(*fakeUoW) {},
			wantErr: commands.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow := newFakeUoW()
			tt.setup(uow)
			cmds, _ := newAuthCommands(uow)

			res, err := cmds.Login(ctx, tt.req)

			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			uow.AssertExpectations(t)
		})
	}

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("UserByUsername", mock.Anything, "guest").Return(nil, repoErr(infra.KindDBFailure))
		cmds, _ := newAuthCommands(uow)

		_, err := cmds.Login(ctx, commands.LoginRequest{Username: "guest", Password: testPassword})

		require.Error(t, err)
		assert.False(t, errs.Is(err, commands.ErrInvalidCredentials))
	})
}

func TestAuthCommands_EnsureManager(t *testing.T) {
	ctx := context.Background()
	req := commands.RegisterRequest{Username: "admin", Password: testPassword}

	t.Run("existing account gets the role", func(t *testing.T) {
		uow := newFakeUoW()
		existing := builder.NewUserBuilder().WithUsername("admin").BuildSnapshot()
		uow.reads.On("UserByUsername", mock.Anything, "admin").Return(existing, nil)
		uow.users.On("AddRole", mock.Anything, mock.Anything, "admin", user.RoleManager).Return(nil)
		cmds, _ := newAuthCommands(uow)

		require.NoError(t, cmds.EnsureManager(ctx, req))
		uow.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		uow.AssertExpectations(t)
	})

	t.Run("missing account is created as manager", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("UserByUsername", mock.Anything, "admin").Return(nil, repoErr(infra.KindNotFound))
		uow.users.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Username().Value() == "admin" && u.Roles().IsManager()
		})).Return(nil)
		cmds, _ := newAuthCommands(uow)

		require.NoError(t, cmds.EnsureManager(ctx, req))
		uow.AssertExpectations(t)
	})

	t.Run("lookup failure aborts", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("UserByUsername", mock.Anything, "admin").Return(nil, repoErr(infra.KindDBFailure))
		cmds, _ := newAuthCommands(uow)

		err := cmds.EnsureManager(ctx, req)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		uow.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weak password is rejected before touching the store", func(t *testing.T) {
		uow := newFakeUoW()
		cmds, _ := newAuthCommands(uow)

		err := cmds.EnsureManager(ctx, commands.RegisterRequest{Username: "admin", Password: "short"})

		var verr *domain.ValidationError
		assert.True(t, errs.As(err, &verr))
		uow.AssertExpectations(t)
	})
}
