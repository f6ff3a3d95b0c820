package domain

const (
	SeatAvailable = "available"
	SeatBooked    = "booked"
)

// Seat is a derived view over a route's inventory; it is recomputed on
// every read and never persisted.
type Seat struct {
	Number        int    `json:"number"`
	Status        string `json:"status"`
	PassengerName string `json:"passengerName,omitempty"`
}

// BuildSeatMap produces capacity seats numbered 1..capacity, marking
// those present in booked. Booked numbers outside [1, capacity] are a
// data-integrity fault and are ignored.
func BuildSeatMap(capacity int, booked []int) []Seat {
	seats := make([]Seat, 0, max(capacity, 0))
	for n := 1; n <= capacity; n++ {
		seats = append(seats, Seat{Number: n, Status: SeatAvailable})
	}
	for _, n := range booked {
		if n < 1 || n > capacity {
			continue
		}
		seats[n-1].Status = SeatBooked
	}
	return seats
}
