//go:build unit || e2e

package builder

import (
	"time"

	"little-lemon/internal/domain/booking"
	reqdto "little-lemon/internal/handler/dto/request"
	"little-lemon/internal/usecase/queries"
)

// BookingBuilder defaults to the first slot of the first day in the window seen at Now.
type BookingBuilder struct {
	ID         int64
	Name       string
	NoOfGuests int
	Date       string
	Time       string
}

// Now is a fixed instant before the 20:00 cutoff, so the window starts the same day.
var Now = time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC)

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         1,
		Name:       "Mario",
		NoOfGuests: 2,
		Date:       "2024-06-01",
		Time:       "21:00",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithSlot(date, tm string) *BookingBuilder {
	b.Date = date
	b.Time = tm
	return b
}

func (b *BookingBuilder) Request() booking.Request {
	return booking.Request{
		Name:       b.Name,
		NoOfGuests: b.NoOfGuests,
		Date:       b.Date,
		Time:       b.Time,
	}
}

func (b *BookingBuilder) BuildDomain(now time.Time) (*booking.Booking, error) {
	return booking.NewBooking(b.Request(), booking.DefaultSchedule(), now)
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	guests := b.NoOfGuests
	return reqdto.CreateBookingRequest{
		Name:       b.Name,
		NoOfGuests: &guests,
		Date:       b.Date,
		Time:       b.Time,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		Name:       b.Name,
		NoOfGuests: b.NoOfGuests,
		Date:       b.Date,
		Time:       b.Time,
	}
}
