package booking

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time with minute precision, stored as minutes since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS". Non-zero seconds never land on a slot.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var (
		t   time.Time
		err error
	)
	if len(s) == len("15:04") {
		t, err = time.Parse("15:04", s)
	} else {
		t, err = time.Parse("15:04:05", s)
	}
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	if t.Second() != 0 {
		return 0, ErrTimeNotOnGrid
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// GenerateSlots lists the bookable times starting at startHour.
//
// The start is always included and stepping continues while the current value
// is before endHour, so the last slot is the first step at or past endHour:
// 21/23/5 ends exactly at 23:00, 21/23/7 ends at 23:06.
func GenerateSlots(startHour, endHour, intervalMinutes int) []TimeOfDay {
	cur := NewTimeOfDay(startHour, 0)
	end := NewTimeOfDay(endHour, 0)
	slots := []TimeOfDay{cur}
	if intervalMinutes <= 0 {
		return slots
	}
	for cur < end {
		cur += TimeOfDay(intervalMinutes)
		slots = append(slots, cur)
	}
	return slots
}
