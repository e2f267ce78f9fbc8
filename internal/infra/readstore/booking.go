package readstore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/infra"
	"little-lemon/internal/infra/db"
	"little-lemon/internal/pkg/pgconv"
	"little-lemon/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	bookingColumns = `id, name, no_of_guests, booking_date, booking_time`

	findBookingByIDSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE id = $1`

	// $1 is an already escaped prefix; backslash is the default LIKE escape
	listBookingsSQL = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE ($1::text IS NULL OR lower(name) LIKE (lower($1::text) || '%'))
  AND ($2::date IS NULL OR booking_date = $2::date)
ORDER BY booking_date DESC, booking_time DESC, id DESC`

	listBookedSlotsSQL = `
SELECT booking_date, booking_time
FROM bookings
WHERE booking_date BETWEEN $1 AND $2`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(dbtx db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{db: dbtx, logger: logger}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	v, err := scanBookingView(r.db.QueryRow(ctx, findBookingByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find booking by ID", err)
	}
	return v, nil
}

func (r *BookingReadStore) List(ctx context.Context, filters queries.BookingFilters) ([]*queries.BookingView, error) {
	var prefix *string
	if filters.NamePrefix != nil {
		escaped := likeEscaper.Replace(*filters.NamePrefix)
		prefix = &escaped
	}

	rows, err := r.db.Query(ctx, listBookingsSQL,
		pgconv.StringPtrToPgtype(prefix),
		pgconv.DatePtrToPgtype(filters.Date),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings", err)
	}

	views, err := pgx.CollectRows(rows, rowTo(scanBookingView))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan bookings", err)
	}
	return views, nil
}

// BookedSlots returns every taken slot with a date in [from, to].
func (r *BookingReadStore) BookedSlots(ctx context.Context, from, to booking.Date) ([]queries.BookedSlot, error) {
	rows, err := r.db.Query(ctx, listBookedSlotsSQL,
		pgconv.DateToPgtype(from.Time()),
		pgconv.DateToPgtype(to.Time()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list booked slots", err)
	}

	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.BookedSlot, error) {
		var (
			d pgtype.Date
			t pgtype.Time
		)
		if err := row.Scan(&d, &t); err != nil {
			return queries.BookedSlot{}, err
		}
		return queries.BookedSlot{
			Date: booking.DateOf(d.Time),
			Time: booking.TimeOfDay(pgconv.PgtypeTimeToMinutes(t)),
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booked slots", err)
	}
	return slots, nil
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		v queries.BookingView
		d pgtype.Date
		t pgtype.Time
	)
	if err := row.Scan(&v.ID, &v.Name, &v.NoOfGuests, &d, &t); err != nil {
		return nil, err
	}
	v.Date = d.Time.Format(time.DateOnly)
	v.Time = booking.TimeOfDay(pgconv.PgtypeTimeToMinutes(t)).String()
	return &v, nil
}
