package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"

	"little-lemon/internal/domain/booking"
	"little-lemon/internal/infra"
	"little-lemon/internal/pkg/clock"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase/shared"
)

var (
	// ErrBookingRejected covers every store failure on create, a taken slot included.
	ErrBookingRejected = errs.New("booking rejected")
	ErrBookingNotFound = errs.New("booking not found")
)

type CreateBookingRequest struct {
	Name       string
	NoOfGuests int
	Date       string
	Time       string
}

type CreateBookingResult struct {
	ID int64
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
	Delete(ctx context.Context, id int64) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	schedule booking.Schedule
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, schedule booking.Schedule, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		schedule: schedule,
		clock:    clk,
		logger:   logger,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	b, err := booking.NewBooking(booking.Request{
		Name:       req.Name,
		NoOfGuests: req.NoOfGuests,
		Date:       req.Date,
		Time:       req.Time,
	}, c.schedule, c.clock.Now())
	if err != nil {
		return nil, err
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		// The caller only learns that the slot could not be taken.
		c.logger.Info("booking rejected",
			slog.String("date", b.Date().String()),
			slog.String("time", b.Time().String()),
			slog.Bool("slot_taken", infra.IsKind(err, infra.KindDuplicateKey)))
		return nil, errs.Mark(err, ErrBookingRejected)
	}
	return &CreateBookingResult{ID: id}, nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().Delete(ctx, tx.DB(), id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrBookingNotFound)
			}
			return derr
		}
		return nil
	})
}
