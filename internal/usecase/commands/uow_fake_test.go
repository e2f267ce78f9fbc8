//go:build unit

package commands_test

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/domain/menu"
	"little-lemon/internal/domain/user"
	"little-lemon/internal/infra"
	"little-lemon/internal/infra/db"
	"little-lemon/internal/usecase/shared"

	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.DiscardHandler)

func repoErr(kind infra.RepositoryErrorKind) error {
	return infra.WrapRepoErr(discardLogger, kind, "test", nil)
}

// fakeUoW runs every unit of work against the same mocked repositories.
type fakeUoW struct {
	menuItems *mockMenuItemRepo
	bookings  *mockBookingRepo
	users     *mockUserRepo
	reads     *mockCommandReads
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		menuItems: new(mockMenuItemRepo),
		bookings:  new(mockBookingRepo),
		users:     new(mockUserRepo),
		reads:     new(mockCommandReads),
	}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads    { return u.reads }
func (u *fakeUoW) MenuItems() shared.MenuItemRepository { return u.menuItems }
func (u *fakeUoW) Bookings() shared.BookingRepository   { return u.bookings }
func (u *fakeUoW) Users() shared.UserRepository         { return u.users }
func (u *fakeUoW) Reads() shared.CommandReads           { return u.reads }
func (u *fakeUoW) DB() db.DBTX                          { return nil }

func (u *fakeUoW) AssertExpectations(t mock.TestingT) {
	u.menuItems.AssertExpectations(t)
	u.bookings.AssertExpectations(t)
	u.users.AssertExpectations(t)
	u.reads.AssertExpectations(t)
}

type mockMenuItemRepo struct{ mock.Mock }

func (m *mockMenuItemRepo) Create(ctx context.Context, tx db.DBTX, item *menu.MenuItem) (int64, error) {
	args := m.Called(ctx, tx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMenuItemRepo) Update(ctx context.Context, tx db.DBTX, item *menu.MenuItem) error {
	return m.Called(ctx, tx, item).Error(0)
}

func (m *mockMenuItemRepo) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return m.Called(ctx, tx, id).Error(0)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	args := m.Called(ctx, tx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	return m.Called(ctx, tx, id).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	return m.Called(ctx, tx, u).Error(0)
}

func (m *mockUserRepo) AddRole(ctx context.Context, tx db.DBTX, username, role string) error {
	return m.Called(ctx, tx, username, role).Error(0)
}

type mockCommandReads struct{ mock.Mock }

func (m *mockCommandReads) MenuItemByID(ctx context.Context, id int64) (*shared.MenuItemSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*shared.MenuItemSnapshot)
	return snap, args.Error(1)
}

func (m *mockCommandReads) UserByUsername(ctx context.Context, username string) (*shared.UserSnapshot, error) {
	args := m.Called(ctx, username)
	snap, _ := args.Get(0).(*shared.UserSnapshot)
	return snap, args.Error(1)
}
