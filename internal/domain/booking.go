package domain

import (
	"fmt"

	"buslink/internal/domain/models"
)

// BookSeat claims a seat on the route, mutating its booked set.
// Seat numbers must lie within [1, capacity]; claiming a taken seat is
// a conflict. Callers are responsible for making the surrounding
// read-modify-write atomic (store mutex or a row lock).
func BookSeat(r *models.Route, seat int) error {
	if seat < 1 || seat > r.Capacity {
		return ValidationError{
			Field: "seatNumber",
			Msg:   fmt.Sprintf("must be between 1 and %d", r.Capacity),
		}
	}
	if r.HasSeat(seat) {
		return ConflictError{Resource: "seat", Msg: fmt.Sprintf("seat %d already booked", seat)}
	}
	r.BookedSeats = append(r.BookedSeats, seat)
	return nil
}

// UnbookSeat releases a previously claimed seat.
func UnbookSeat(r *models.Route, seat int) error {
	if !r.HasSeat(seat) {
		return ConflictError{Resource: "seat", Msg: fmt.Sprintf("seat %d not booked", seat)}
	}
	kept := r.BookedSeats[:0]
	for _, s := range r.BookedSeats {
		if s != seat {
			kept = append(kept, s)
		}
	}
	r.BookedSeats = kept
	return nil
}
