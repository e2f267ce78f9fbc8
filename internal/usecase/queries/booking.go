package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	// ErrNoBookingsMatch is returned instead of an empty list.
	ErrNoBookingsMatch = errs.New("no bookings match the given filters")
)

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filters BookingFilters) ([]*BookingView, error) {
	if filters.NamePrefix != nil && *filters.NamePrefix == "" {
		filters.NamePrefix = nil
	}

	bookings, err := q.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookingsMatch
	}
	return bookings, nil
}
