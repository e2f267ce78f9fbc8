package uow

import (
	"context"
	"errors"
	"log/slog"

	"little-lemon/internal/infra/db"
	"little-lemon/internal/infra/readstore"
	"little-lemon/internal/infra/repository"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// A failed transaction is rolled back and reported as is; callers decide what it means.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}
	return nil
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	menuRepo     shared.MenuItemRepository
	bookingRepo  shared.BookingRepository
	userRepo     shared.UserRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) MenuItems() shared.MenuItemRepository {
	if t.menuRepo == nil {
		t.menuRepo = repository.NewMenuItemRepository(t.uow.logger)
	}
	return t.menuRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.logger)
	}
	return t.bookingRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.logger)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx db.DBTX

	// Lazy-initialized readstores
	menuStore *readstore.MenuReadStore
	userStore *readstore.UserReadStore
}

func (r *commandReads) MenuItemByID(ctx context.Context, id int64) (*shared.MenuItemSnapshot, error) {
	if r.menuStore == nil {
		r.menuStore = readstore.NewMenuReadStore(r.dbtx, r.uow.logger)
	}

	item, err := r.menuStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.MenuItemSnapshot{
		ID:        item.ID,
		Title:     item.Title,
		Price:     item.Price,
		Inventory: item.Inventory,
	}, nil
}

func (r *commandReads) UserByUsername(ctx context.Context, username string) (*shared.UserSnapshot, error) {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.dbtx, r.uow.logger)
	}

	u, hash, err := r.userStore.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return &shared.UserSnapshot{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: hash,
		Roles:        u.Roles,
		IsActive:     u.IsActive,
	}, nil
}
