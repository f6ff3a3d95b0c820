package models

import "time"

const (
	RouteStatusActive    = "active"
	RouteStatusInactive  = "inactive"
	RouteStatusCompleted = "completed"
	RouteStatusCancelled = "cancelled"
)

// ValidRouteStatus reports whether s is one of the known route statuses.
// Route status is a flat enum; no transition rules are enforced.
func ValidRouteStatus(s string) bool {
	switch s {
	case RouteStatusActive, RouteStatusInactive, RouteStatusCompleted, RouteStatusCancelled:
		return true
	}
	return false
}

type Route struct {
	ID            int64     `json:"id"`
	VendorID      int64     `json:"vendorId"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime string    `json:"departureTime"`
	ArrivalTime   string    `json:"arrivalTime"`
	DaysOfWeek    []string  `json:"daysOfWeek"`
	Stops         []string  `json:"stops"`
	Fare          int64     `json:"fare"`
	Capacity      int       `json:"capacity"`
	Status        string    `json:"status"`
	BookedSeats   []int     `json:"bookedSeats"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasSeat reports whether seat is present in the booked set.
func (r Route) HasSeat(seat int) bool {
	for _, s := range r.BookedSeats {
		if s == seat {
			return true
		}
	}
	return false
}

// RoutePatch carries partial updates; nil fields are left untouched.
// The route identifier and booked-seats set are never patched this way.
type RoutePatch struct {
	VendorID      *int64    `json:"vendorId"`
	Origin        *string   `json:"origin"`
	Destination   *string   `json:"destination"`
	DepartureTime *string   `json:"departureTime"`
	ArrivalTime   *string   `json:"arrivalTime"`
	DaysOfWeek    *[]string `json:"daysOfWeek"`
	Stops         *[]string `json:"stops"`
	Fare          *int64    `json:"fare"`
	Capacity      *int      `json:"capacity"`
	Status        *string   `json:"status"`
}

// Apply merges the patch into r in place.
func (p RoutePatch) Apply(r *Route) {
	if p.VendorID != nil {
		r.VendorID = *p.VendorID
	}
	if p.Origin != nil {
		r.Origin = *p.Origin
	}
	if p.Destination != nil {
		r.Destination = *p.Destination
	}
	if p.DepartureTime != nil {
		r.DepartureTime = *p.DepartureTime
	}
	if p.ArrivalTime != nil {
		r.ArrivalTime = *p.ArrivalTime
	}
	if p.DaysOfWeek != nil {
		r.DaysOfWeek = *p.DaysOfWeek
	}
	if p.Stops != nil {
		r.Stops = *p.Stops
	}
	if p.Fare != nil {
		r.Fare = *p.Fare
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}
