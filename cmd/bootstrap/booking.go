package bootstrap

import (
	"fmt"
	"time"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/pkg/config"

	"go.uber.org/fx"
)

var BookingModule = fx.Module("booking",
	fx.Provide(
		NewSchedule,
	),
)

// NewSchedule fails startup on a booking configuration that cannot produce a grid.
func NewSchedule(cfg config.Config) (booking.Schedule, error) {
	bc := cfg.Booking
	loc, err := time.LoadLocation(bc.TimeZone)
	if err != nil {
		return booking.Schedule{}, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", bc.TimeZone, err)
	}
	schedule, err := booking.NewSchedule(bc.OpenHour, bc.CloseHour, bc.SlotMinutes, bc.CutoffHour, bc.WindowDays, loc)
	if err != nil {
		return booking.Schedule{}, fmt.Errorf("invalid booking configuration: %w", err)
	}
	return schedule, nil
}
