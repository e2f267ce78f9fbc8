package components

import (
	"little-lemon/internal/infra/db"
	"little-lemon/internal/infra/readstore"
	"little-lemon/internal/infra/uow"
	"little-lemon/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Read side
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
