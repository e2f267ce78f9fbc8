package response

import (
	"little-lemon/internal/domain/booking"
	"little-lemon/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NoOfGuests int    `json:"no_of_guests"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type BookingEnvelope struct {
	Detail string           `json:"detail"`
	Book   *BookingResponse `json:"book"`
}

// AvailabilityResponse is what a non-manager sees on GET /book.
type AvailabilityResponse struct {
	Detail   string       `json:"detail"`
	Bookings booking.Grid `json:"bookings"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, 0, len(items))
	_ = copier.Copy(&res, &items)
	return res
}
