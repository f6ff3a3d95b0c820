package domain

import "testing"

func TestBuildSeatMapMarksBookedSeats(t *testing.T) {
	seats := BuildSeatMap(40, []int{5, 12, 39})

	if len(seats) != 40 {
		t.Fatalf("expected 40 seats, got %d", len(seats))
	}
	booked := map[int]bool{5: true, 12: true, 39: true}
	for _, s := range seats {
		want := SeatAvailable
		if booked[s.Number] {
			want = SeatBooked
		}
		if s.Status != want {
			t.Fatalf("seat %d: got status %q want %q", s.Number, s.Status, want)
		}
	}
	if seats[39].Status != SeatAvailable {
		t.Fatalf("seat 40 should be available, got %q", seats[39].Status)
	}
}

func TestBuildSeatMapNumbersAreOrdered(t *testing.T) {
	seats := BuildSeatMap(7, nil)
	if len(seats) != 7 {
		t.Fatalf("expected 7 seats, got %d", len(seats))
	}
	for i, s := range seats {
		if s.Number != i+1 {
			t.Fatalf("seat at index %d has number %d", i, s.Number)
		}
	}
}

func TestBuildSeatMapIgnoresOutOfRangeBookings(t *testing.T) {
	seats := BuildSeatMap(3, []int{0, -4, 4, 99, 2})
	if len(seats) != 3 {
		t.Fatalf("expected 3 seats, got %d", len(seats))
	}
	if seats[1].Status != SeatBooked {
		t.Fatalf("seat 2 should be booked")
	}
	if seats[0].Status != SeatAvailable || seats[2].Status != SeatAvailable {
		t.Fatalf("seats 1 and 3 should stay available")
	}
}

func TestBuildSeatMapZeroCapacity(t *testing.T) {
	if seats := BuildSeatMap(0, []int{1}); len(seats) != 0 {
		t.Fatalf("expected empty seat map, got %d entries", len(seats))
	}
}
