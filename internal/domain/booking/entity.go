package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"little-lemon/internal/domain"
)

var (
	ErrInvalidSchedule   = errors.New("invalid booking schedule")
	ErrInvalidDateFormat = errors.New("date has wrong format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("time has wrong format, use hh:mm[:ss]")
	ErrTimeNotOnGrid     = errors.New("time is not a bookable slot")
)

const (
	MaxNameLength = 255
	MinGuests     = 1
	MaxGuests     = 6
)

// Booking reserves one slot on one date. At most one booking exists per slot.
type Booking struct {
	id         int64
	name       string
	noOfGuests int
	date       Date
	time       TimeOfDay
}

// Request is the raw caller input before it is checked against a Schedule.
type Request struct {
	Name       string
	NoOfGuests int
	Date       string
	Time       string
}

// NewBooking checks every field of req and returns all failures at once.
// Date and time are checked against the window and slot grid seen at now.
func NewBooking(req Request, schedule Schedule, now time.Time) (*Booking, error) {
	v := domain.NewValidationError()

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		v.Add("name", "This field may not be blank.")
	case utf8.RuneCountInString(name) > MaxNameLength:
		v.Add("name", fmt.Sprintf("Ensure this field has no more than %d characters.", MaxNameLength))
	}

	switch {
	case req.NoOfGuests < MinGuests:
		v.Add("no_of_guests", fmt.Sprintf("Ensure this value is greater than or equal to %d.", MinGuests))
	case req.NoOfGuests > MaxGuests:
		v.Add("no_of_guests", fmt.Sprintf("Ensure this value is less than or equal to %d.", MaxGuests))
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		v.Add("date", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	} else if !schedule.InWindow(date, now) {
		w := schedule.Window(now)
		v.Add("date", fmt.Sprintf("Select a date between %s and %s.", w[0], w[len(w)-1]))
	}

	t, err := ParseTimeOfDay(req.Time)
	switch {
	case errors.Is(err, ErrInvalidTimeFormat):
		v.Add("time", "Time has wrong format. Use one of these formats instead: hh:mm[:ss].")
	case err != nil || !schedule.IsSlot(t):
		slots := schedule.Slots()
		v.Add("time", fmt.Sprintf("Select a valid time slot between %s and %s every %d minutes.",
			slots[0], slots[len(slots)-1], schedule.slotMinutes))
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	return &Booking{
		name:       name,
		noOfGuests: req.NoOfGuests,
		date:       date,
		time:       t,
	}, nil
}

// Reconstruct rebuilds a stored booking without re-validating it.
func Reconstruct(id int64, name string, noOfGuests int, date Date, t TimeOfDay) *Booking {
	return &Booking{id: id, name: name, noOfGuests: noOfGuests, date: date, time: t}
}

func (b *Booking) ID() int64       { return b.id }
func (b *Booking) Name() string    { return b.name }
func (b *Booking) NoOfGuests() int { return b.noOfGuests }
func (b *Booking) Date() Date      { return b.date }
func (b *Booking) Time() TimeOfDay { return b.time }
