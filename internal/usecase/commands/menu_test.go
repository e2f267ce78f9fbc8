//go:build unit

package commands_test

import (
	"context"
	"testing"

	"little-lemon/internal/domain"
	"little-lemon/internal/domain/menu"
	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/pkg/patch"
	"little-lemon/internal/usecase/commands"
	"little-lemon/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMenuCommands_Create(t *testing.T) {
	ctx := context.Background()
	item := builder.NewMenuItemBuilder()
	req := commands.CreateMenuItemRequest{Title: item.Title, Price: item.Price, Inventory: item.Inventory}

	t.Run("success", func(t *testing.T) {
		uow := newFakeUoW()
		uow.menuItems.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(m *menu.MenuItem) bool {
			return m.Title() == "Greek Salad" && m.Price().String() == "12.50" && m.Inventory() == 10
		})).Return(int64(42), nil)

		res, err := commands.NewMenuCommands(uow).Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.ID)
		uow.AssertExpectations(t)
	})

	t.Run("invalid fields never reach the store", func(t *testing.T) {
		uow := newFakeUoW()
		bad := commands.CreateMenuItemRequest{Title: " ", Price: "-1", Inventory: 70000}

		_, err := commands.NewMenuCommands(uow).Create(ctx, bad)

		var verr *domain.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.ElementsMatch(t, []string{"title", "price", "inventory"}, keys(verr.Fields))
		uow.menuItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate title", func(t *testing.T) {
		uow := newFakeUoW()
		uow.menuItems.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), repoErr(infra.KindDuplicateKey))

		_, err := commands.NewMenuCommands(uow).Create(ctx, req)

		assert.True(t, errs.Is(err, commands.ErrDuplicateTitle))
		var verr *domain.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		uow := newFakeUoW()
		uow.menuItems.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), repoErr(infra.KindDBFailure))

		_, err := commands.NewMenuCommands(uow).Create(ctx, req)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, errs.Is(err, commands.ErrDuplicateTitle))
	})
}

func TestMenuCommands_Update(t *testing.T) {
	ctx := context.Background()
	stored := builder.NewMenuItemBuilder().BuildSnapshot()

	t.Run("empty patch", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("MenuItemByID", mock.Anything, int64(1)).Return(stored, nil)

		err := commands.NewMenuCommands(uow).Update(ctx, 1, commands.UpdateMenuItemRequest{})

		assert.True(t, errs.Is(err, menu.ErrEmptyPatch))
		uow.AssertExpectations(t)
		uow.menuItems.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty patch on unknown id", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("MenuItemByID", mock.Anything, int64(9)).Return(nil, repoErr(infra.KindNotFound))

		err := commands.NewMenuCommands(uow).Update(ctx, 9, commands.UpdateMenuItemRequest{})

		assert.True(t, errs.Is(err, commands.ErrMenuItemNotFound))
		assert.False(t, errs.Is(err, menu.ErrEmptyPatch))
	})

	t.Run("partial update keeps the other fields", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("MenuItemByID", mock.Anything, int64(1)).Return(stored, nil)
		uow.menuItems.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(m *menu.MenuItem) bool {
			return m.ID() == 1 && m.Title() == "Greek Salad" && m.Price().String() == "12.50" && m.Inventory() == 5
		})).Return(nil)

		err := commands.NewMenuCommands(uow).Update(ctx, 1, commands.UpdateMenuItemRequest{Inventory: patch.Ptr(5)})

		require.NoError(t, err)
		uow.AssertExpectations(t)
	})

	t.Run("exponent price", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("MenuItemByID", mock.Anything, int64(1)).Return(stored, nil)
		uow.menuItems.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(m *menu.MenuItem) bool {
			return m.Price().Cents() == 1000
		})).Return(nil)

		err := commands.NewMenuCommands(uow).Update(ctx, 1, commands.UpdateMenuItemRequest{Price: patch.Ptr("1e1")})

		require.NoError(t, err)
		uow.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("MenuItemByID", mock.Anything, int64(9)).Return(nil, repoErr(infra.KindNotFound))

		err := commands.NewMenuCommands(uow).Update(ctx, 9, commands.UpdateMenuItemRequest{Title: patch.Ptr("Soup")})

		assert.True(t, errs.Is(err, commands.ErrMenuItemNotFound))
	})

	t.Run("invalid value", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("MenuItemByID", mock.Anything, int64(1)).Return(stored, nil)

		err := commands.NewMenuCommands(uow).Update(ctx, 1, commands.UpdateMenuItemRequest{Price: patch.Ptr("12.345")})

		var verr *domain.ValidationError
		require.True(t, errs.As(err, &verr))
		assert.Contains(t, verr.Fields, "price")
		uow.menuItems.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("renaming onto an existing title", func(t *testing.T) {
		uow := newFakeUoW()
		uow.reads.On("MenuItemByID", mock.Anything, int64(1)).Return(stored, nil)
		uow.menuItems.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(repoErr(infra.KindDuplicateKey))

		err := commands.NewMenuCommands(uow).Update(ctx, 1, commands.UpdateMenuItemRequest{Title: patch.Ptr("Bruschetta")})

		assert.True(t, errs.Is(err, commands.ErrDuplicateTitle))
	})
}

func TestMenuCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uow := newFakeUoW()
		uow.menuItems.On("Delete", mock.Anything, mock.Anything, int64(1)).Return(nil)

		require.NoError(t, commands.NewMenuCommands(uow).Delete(ctx, 1))
		uow.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		uow := newFakeUoW()
		uow.menuItems.On("Delete", mock.Anything, mock.Anything, int64(9)).Return(repoErr(infra.KindNotFound))

		err := commands.NewMenuCommands(uow).Delete(ctx, 9)

		assert.True(t, errs.Is(err, commands.ErrMenuItemNotFound))
	})
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
