package models

import "time"

const (
	TicketStatusPending   = "pending"
	TicketStatusConfirmed = "confirmed"
	TicketStatusCancelled = "cancelled"
	TicketStatusRefunded  = "refunded"
)

type Ticket struct {
	ID            int64     `json:"id"`
	RouteID       int64     `json:"routeId"`
	VendorID      int64     `json:"vendorId"`
	BookingRef    string    `json:"bookingRef"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	SeatNumber    int       `json:"seatNumber"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	TravelDate    string    `json:"travelDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ValidTicketTransition encodes the ticket lifecycle:
// pending -> confirmed, pending/confirmed -> cancelled,
// cancelled -> refunded.
func ValidTicketTransition(from, to string) bool {
	switch to {
	case TicketStatusConfirmed:
		return from == TicketStatusPending
	case TicketStatusCancelled:
		return from == TicketStatusPending || from == TicketStatusConfirmed
	case TicketStatusRefunded:
		return from == TicketStatusCancelled
	}
	return false
}
