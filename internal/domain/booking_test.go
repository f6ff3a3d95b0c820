package domain

import (
	"testing"

	"buslink/internal/domain/models"
)

func TestBookSeatAddsToBookedSet(t *testing.T) {
	r := models.Route{Capacity: 40}

	if err := BookSeat(&r, 5); err != nil {
		t.Fatalf("book seat 5: %v", err)
	}
	if !r.HasSeat(5) {
		t.Fatalf("seat 5 should be in booked set")
	}
}

func TestBookSeatTwiceConflicts(t *testing.T) {
	r := models.Route{Capacity: 40, BookedSeats: []int{5}}

	err := BookSeat(&r, 5)
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if len(r.BookedSeats) != 1 || r.BookedSeats[0] != 5 {
		t.Fatalf("booked set changed on failed booking: %v", r.BookedSeats)
	}
}

func TestBookSeatRejectsOutOfRange(t *testing.T) {
	r := models.Route{Capacity: 10}

	for _, seat := range []int{0, -1, 11} {
		err := BookSeat(&r, seat)
		if !IsValidation(err) {
			t.Fatalf("seat %d: expected validation error, got %v", seat, err)
		}
	}
	if len(r.BookedSeats) != 0 {
		t.Fatalf("booked set should be untouched, got %v", r.BookedSeats)
	}
}

func TestUnbookSeatRemovesOnlyTarget(t *testing.T) {
	r := models.Route{Capacity: 10, BookedSeats: []int{3, 7}}

	if err := UnbookSeat(&r, 7); err != nil {
		t.Fatalf("unbook seat 7: %v", err)
	}
	if len(r.BookedSeats) != 1 || r.BookedSeats[0] != 3 {
		t.Fatalf("expected booked set {3}, got %v", r.BookedSeats)
	}

	err := UnbookSeat(&r, 7)
	if !IsConflict(err) {
		t.Fatalf("expected not-booked conflict, got %v", err)
	}
}

func TestUnbookSeatOnEmptySet(t *testing.T) {
	r := models.Route{Capacity: 10}
	if err := UnbookSeat(&r, 1); !IsConflict(err) {
		t.Fatalf("expected conflict on empty booked set, got %v", err)
	}
}

func TestBookThenUnbookRoundTrip(t *testing.T) {
	r := models.Route{Capacity: 20, BookedSeats: []int{2, 9}}

	if err := BookSeat(&r, 15); err != nil {
		t.Fatalf("book: %v", err)
	}
	if err := UnbookSeat(&r, 15); err != nil {
		t.Fatalf("unbook: %v", err)
	}

	want := map[int]bool{2: true, 9: true}
	if len(r.BookedSeats) != len(want) {
		t.Fatalf("expected booked set {2,9}, got %v", r.BookedSeats)
	}
	for _, s := range r.BookedSeats {
		if !want[s] {
			t.Fatalf("unexpected seat %d in booked set %v", s, r.BookedSeats)
		}
	}
}
