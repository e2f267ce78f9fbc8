package repository

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/infra"
	"little-lemon/internal/infra/db"
	"little-lemon/internal/pkg/pgconv"
)

const (
	insertBookingSQL = `
INSERT INTO bookings (name, no_of_guests, booking_date, booking_time)
VALUES ($1, $2, $3, $4)
RETURNING id`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`
)

type BookingRepository struct {
	logger *slog.Logger
}

func NewBookingRepository(logger *slog.Logger) *BookingRepository {
	return &BookingRepository{logger: logger}
}

// Create relies on bookings_slot_key to reject a second booking for the same slot.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, insertBookingSQL,
		b.Name(),
		b.NoOfGuests(),
		pgconv.DateToPgtype(b.Date().Time()),
		pgconv.MinutesToPgtypeTime(int(b.Time())),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id int64) error {
	tag, err := tx.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}
