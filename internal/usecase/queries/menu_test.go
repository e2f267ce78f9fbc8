//go:build unit

package queries_test

import (
	"context"
	"testing"

	"little-lemon/internal/infra"
	"little-lemon/internal/usecase/queries"
	"little-lemon/tests/common/builder"
	queriesmock "little-lemon/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMenuQueries(t *testing.T) {
	ctx := context.Background()
	salad := builder.NewMenuItemBuilder().BuildReadModel()

	t.Run("list passes the store order through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMenuReadStore(ctrl)
		items := []*queries.MenuItemView{
			builder.NewMenuItemBuilder().With(func(b *builder.MenuItemBuilder) { b.ID = 2 }).WithTitle("Bruschetta").BuildReadModel(),
			salad,
		}
		store.EXPECT().List(gomock.Any()).Return(items, nil)

		got, err := queries.NewMenuQueries(store).List(ctx)

		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("get by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMenuReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(salad, nil)

		got, err := queries.NewMenuQueries(store).GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "12.50", got.Price)
	})

	t.Run("get unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMenuReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, repoErr(infra.KindNotFound))

		_, err := queries.NewMenuQueries(store).GetByID(ctx, 5)

		assert.ErrorIs(t, err, queries.ErrMenuItemNotFound)
	})

	t.Run("get store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockMenuReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), int64(5)).Return(nil, repoErr(infra.KindDBFailure))

		_, err := queries.NewMenuQueries(store).GetByID(ctx, 5)

		require.Error(t, err)
		assert.NotErrorIs(t, err, queries.ErrMenuItemNotFound)
	})
}
