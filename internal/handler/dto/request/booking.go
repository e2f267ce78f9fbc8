package request

import (
	"time"

	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"
)

// Ranges and formats are checked by the booking domain so that all field errors come back together.
type CreateBookingRequest struct {
	Name       string `json:"name" binding:"required"`
	NoOfGuests *int   `json:"no_of_guests" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		Name:       r.Name,
		NoOfGuests: *r.NoOfGuests,
		Date:       r.Date,
		Time:       r.Time,
	}
}

// BookingListQuery holds the manager listing filters.
type BookingListQuery struct {
	Name string `form:"name"`
	Date string `form:"date"`
}

func (q *BookingListQuery) ToFilters() (queries.BookingFilters, map[string][]string) {
	var f queries.BookingFilters
	if q.Name != "" {
		name := q.Name
		f.NamePrefix = &name
	}
	if q.Date != "" {
		d, err := time.Parse(time.DateOnly, q.Date)
		if err != nil {
			return f, map[string][]string{"date": {"Enter a valid date."}}
		}
		f.Date = &d
	}
	return f, nil
}
