//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/pkg/jwt"
	"little-lemon/internal/usecase"
	"little-lemon/internal/usecase/queries"
	"little-lemon/tests/common/builder"
	queriesmock "little-lemon/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateToken(t *testing.T) {
	ctx := context.Background()
	svc := jwt.NewService("test-secret", time.Hour)

	t.Run("roles come from the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		view := builder.NewUserBuilder().AsManager().BuildReadModel()
		token, err := svc.GenerateToken(view.ID)
		require.NoError(t, err)
		users.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		p, err := usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, view.ID, p.UserID)
		assert.Equal(t, "guest", p.Username)
		assert.True(t, p.IsManager())
	})

	t.Run("malformed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)

		_, err := usecase.NewTokenValidator(svc, users).ValidateToken(ctx, "not-a-jwt")

		assert.True(t, errs.Is(err, usecase.ErrUnauthenticated))
	})

	t.Run("token signed with another key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		token, err := jwt.NewService("other-secret", time.Hour).GenerateToken(uuid.New())
		require.NoError(t, err)

		_, err = usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		assert.True(t, errs.Is(err, usecase.ErrUnauthenticated))
	})

	for _, lookupErr := range []error{queries.ErrUserNotFound, queries.ErrUserInactive} {
		t.Run("user lookup: "+lookupErr.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := queriesmock.NewMockUserQueries(ctrl)
			id := uuid.New()
			token, err := svc.GenerateToken(id)
			require.NoError(t, err)
			users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(nil, lookupErr)

			_, err = usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

			assert.True(t, errs.Is(err, usecase.ErrUnauthenticated))
		})
	}

	t.Run("store failure is not an auth failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := queriesmock.NewMockUserQueries(ctrl)
		id := uuid.New()
		token, err := svc.GenerateToken(id)
		require.NoError(t, err)
		users.EXPECT().GetCurrentUser(gomock.Any(), id).Return(nil, assert.AnError)

		_, err = usecase.NewTokenValidator(svc, users).ValidateToken(ctx, token)

		require.Error(t, err)
		assert.False(t, errs.Is(err, usecase.ErrUnauthenticated))
	})
}
