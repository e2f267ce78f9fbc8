package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/clock"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters) ([]*BookingView, error)
	BookedSlots(ctx context.Context, from, to booking.Date) ([]BookedSlot, error)
}

type AvailabilityQueries interface {
	// Availability recomputes the grid on every call.
	Availability(ctx context.Context) (booking.Grid, error)
}

type availabilityQueriesImpl struct {
	repo     BookingReadStore
	schedule booking.Schedule
	clock    clock.Clock
	logger   *slog.Logger
}

func NewAvailabilityQueries(repo BookingReadStore, schedule booking.Schedule, clk clock.Clock, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		repo:     repo,
		schedule: schedule,
		clock:    clk,
		logger:   logger,
	}
}

func (q *availabilityQueriesImpl) Availability(ctx context.Context) (booking.Grid, error) {
	now := q.clock.Now()
	dates := q.schedule.Window(now)
	grid := booking.NewGrid(dates, q.schedule.Slots())

	taken, err := q.repo.BookedSlots(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, err
	}

	for _, s := range taken {
		if !grid.MarkTaken(s.Date, s.Time) {
			q.logger.Debug("booking outside slot grid ignored",
				slog.String("date", s.Date.String()),
				slog.String("time", s.Time.String()))
		}
	}
	return grid, nil
}
