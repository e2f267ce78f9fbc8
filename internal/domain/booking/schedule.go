package booking

import (
	"fmt"
	"slices"
	"time"
)

// Schedule holds the evening service settings that drive slots and the rolling window.
type Schedule struct {
	openHour    int
	closeHour   int
	slotMinutes int
	cutoffHour  int
	windowDays  int
	location    *time.Location
}

func NewSchedule(openHour, closeHour, slotMinutes, cutoffHour, windowDays int, location *time.Location) (Schedule, error) {
	switch {
	case openHour < 0 || closeHour > 23 || openHour >= closeHour:
		return Schedule{}, fmt.Errorf("%w: open hour %d must be before close hour %d within 0..23", ErrInvalidSchedule, openHour, closeHour)
	case slotMinutes < 1 || slotMinutes > 60:
		return Schedule{}, fmt.Errorf("%w: slot minutes %d must be within 1..60", ErrInvalidSchedule, slotMinutes)
	case cutoffHour < 0 || cutoffHour > 24:
		return Schedule{}, fmt.Errorf("%w: cutoff hour %d must be within 0..24", ErrInvalidSchedule, cutoffHour)
	case windowDays < 1:
		return Schedule{}, fmt.Errorf("%w: window days %d must be positive", ErrInvalidSchedule, windowDays)
	}
	if location == nil {
		location = time.UTC
	}
	return Schedule{
		openHour:    openHour,
		closeHour:   closeHour,
		slotMinutes: slotMinutes,
		cutoffHour:  cutoffHour,
		windowDays:  windowDays,
		location:    location,
	}, nil
}

// DefaultSchedule is 21:00 to 23:00 in 5 minute steps, 7 days, switching to tomorrow at 20:00 UTC.
func DefaultSchedule() Schedule {
	s, _ := NewSchedule(21, 23, 5, 20, 7, time.UTC)
	return s
}

func (s Schedule) WindowDays() int          { return s.windowDays }
func (s Schedule) Location() *time.Location { return s.location }

func (s Schedule) Slots() []TimeOfDay {
	return GenerateSlots(s.openHour, s.closeHour, s.slotMinutes)
}

func (s Schedule) Window(now time.Time) []Date {
	return RollingWindow(now, s.location, s.cutoffHour, s.windowDays)
}

func (s Schedule) IsSlot(t TimeOfDay) bool {
	return slices.Contains(s.Slots(), t)
}

func (s Schedule) InWindow(d Date, now time.Time) bool {
	w := s.Window(now)
	return !d.Before(w[0]) && !d.After(w[len(w)-1])
}

// EmptyGrid is the availability grid for now before any booking is applied.
func (s Schedule) EmptyGrid(now time.Time) Grid {
	return NewGrid(s.Window(now), s.Slots())
}
