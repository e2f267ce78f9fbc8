package api

import (
	"net/http"

	"little-lemon/internal/domain"
	reqdto "little-lemon/internal/handler/dto/request"
	resdto "little-lemon/internal/handler/dto/response"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	DetailBookingNotFound  = "No booking matches the id provided"
	DetailNoBookingsMatch  = "No bookings match the given filters"
	DetailBookingCreated   = "The booking was created successfully"
	DetailBookingDeleted   = "The booking has been deleted successfully"
	DetailBookingRejected  = "invalid time"
	DetailAvailableBooking = "Available booking slots for the next 7 days"
)

type BookingHandler struct {
	cmds         commands.BookingCommands
	q            queries.BookingQueries
	availability queries.AvailabilityQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, availability queries.AvailabilityQueries) *BookingHandler {
	return &BookingHandler{
		cmds:         cmds,
		q:            q,
		availability: availability,
	}
}

// @Summary List bookings or availability
// @Description Managers get the bookings matching the filters. Everyone else gets the availability grid.
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param name query string false "Case-insensitive name prefix"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingResponse
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /book [get]
func (h *BookingHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, nil, middleware.DetailNotAuthenticated, nil)
		return
	}

	if !principal.IsManager() {
		h.availabilityGrid(c)
		return
	}

	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.FieldErrors(err))
		return
	}
	filters, fieldErrs := q.ToFilters()
	if fieldErrs != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid request", fieldErrs)
		return
	}

	bookings, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		if errs.Is(err, queries.ErrNoBookingsMatch) {
			httperr.AbortWithError(c, http.StatusNotFound, err, DetailNoBookingsMatch, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(bookings))
}

func (h *BookingHandler) availabilityGrid(c *gin.Context) {
	grid, err := h.availability.Availability(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Detail:   DetailAvailableBooking,
		Bookings: grid,
	})
}

// @Summary Create booking
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /book [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.FieldErrors(err))
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errs.As(err, &verr):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", verr.Fields)
		case errs.Is(err, commands.ErrBookingRejected):
			httperr.AbortWithError(c, http.StatusForbidden, err, DetailBookingRejected, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		}
		return
	}

	b, err := h.q.GetByID(c.Request.Context(), result.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.BookingEnvelope{
		Detail: DetailBookingCreated,
		Book:   resdto.FromBookingView(b),
	})
}

// @Summary Get booking
// @Description Managers only
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /book/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	b, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, DetailBookingNotFound, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(b))
}

// @Summary Delete booking
// @Description Managers only
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.DetailResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /book/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, DetailBookingNotFound, nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.DetailResponse{Detail: DetailBookingDeleted})
}
