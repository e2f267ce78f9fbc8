//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/usecase/queries"
	queriesmock "little-lemon/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discardLogger = slog.New(slog.DiscardHandler)

func TestAvailability(t *testing.T) {
	ctx := context.Background()
	beforeCutoff := time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)
	afterCutoff := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)

	t.Run("window starts today before the cutoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().
			BookedSlots(gomock.Any(), booking.NewDate(2024, 6, 1), booking.NewDate(2024, 6, 7)).
			Return(nil, nil)

		q := queries.NewAvailabilityQueries(store, booking.DefaultSchedule(), clock.NewMockClock(beforeCutoff), discardLogger)
		grid, err := q.Availability(ctx)

		require.NoError(t, err)
		assert.Len(t, grid, 7)
		assert.Contains(t, grid, "2024-06-01")
		assert.Contains(t, grid, "2024-06-07")
		for date, day := range grid {
			assert.Len(t, day, 25, date)
			for tm, status := range day {
				assert.Equal(t, booking.StatusAvailable, status, "%s %s", date, tm)
			}
		}
	})

	t.Run("window starts tomorrow at or after the cutoff", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().
			BookedSlots(gomock.Any(), booking.NewDate(2024, 6, 2), booking.NewDate(2024, 6, 8)).
			Return(nil, nil)

		q := queries.NewAvailabilityQueries(store, booking.DefaultSchedule(), clock.NewMockClock(afterCutoff), discardLogger)
		grid, err := q.Availability(ctx)

		require.NoError(t, err)
		assert.NotContains(t, grid, "2024-06-01")
		assert.Contains(t, grid, "2024-06-08")
	})

	t.Run("booked slots are marked and the rest stay free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		taken := []queries.BookedSlot{
			{Date: booking.NewDate(2024, 6, 1), Time: booking.NewTimeOfDay(21, 0)},
			{Date: booking.NewDate(2024, 6, 3), Time: booking.NewTimeOfDay(22, 35)},
			// off grid, must not appear
			{Date: booking.NewDate(2024, 6, 3), Time: booking.NewTimeOfDay(22, 37)},
		}
		store.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(taken, nil)

		schedule := booking.DefaultSchedule()
		q := queries.NewAvailabilityQueries(store, schedule, clock.NewMockClock(beforeCutoff), discardLogger)
		grid, err := q.Availability(ctx)
		require.NoError(t, err)

		want := schedule.EmptyGrid(beforeCutoff)
		want["2024-06-01"]["21:00"] = booking.StatusNotAvailable
		want["2024-06-03"]["22:35"] = booking.StatusNotAvailable
		if diff := cmp.Diff(want, grid); diff != "" {
			t.Errorf("grid mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("same answer on repeated reads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		taken := []queries.BookedSlot{{Date: booking.NewDate(2024, 6, 2), Time: booking.NewTimeOfDay(21, 30)}}
		store.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(taken, nil).Times(2)

		q := queries.NewAvailabilityQueries(store, booking.DefaultSchedule(), clock.NewMockClock(beforeCutoff), discardLogger)
		first, err := q.Availability(ctx)
		require.NoError(t, err)
		second, err := q.Availability(ctx)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().BookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		q := queries.NewAvailabilityQueries(store, booking.DefaultSchedule(), clock.NewMockClock(beforeCutoff), discardLogger)
		grid, err := q.Availability(ctx)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, grid)
	})
}
