package shared

import (
	"context"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/domain/menu"
	"little-lemon/internal/domain/user"
	"little-lemon/internal/infra/db"
)

type UnitOfWork interface {
	// Within: read committed transaction for write operations, never retried
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single statements using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: lookups for validation outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	MenuItems() MenuItemRepository
	Bookings() BookingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	MenuItemByID(ctx context.Context, id int64) (*MenuItemSnapshot, error)
	UserByUsername(ctx context.Context, username string) (*UserSnapshot, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, tx db.DBTX, item *menu.MenuItem) (int64, error)
	Update(ctx context.Context, tx db.DBTX, item *menu.MenuItem) error
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error)
	Delete(ctx context.Context, tx db.DBTX, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	AddRole(ctx context.Context, tx db.DBTX, username, role string) error
}
