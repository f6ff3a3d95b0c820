package services

import (
	"testing"

	"buslink/internal/domain"
	"buslink/internal/domain/models"
	"buslink/internal/repositories"
)

func newRouteService() (RouteService, *repositories.MemoryRouteStore) {
	store := repositories.NewMemoryRouteStore()
	return RouteService{Store: store}, store
}

func validRoute() models.Route {
	return models.Route{
		VendorID:    1,
		Origin:      "Jakarta",
		Destination: "Bandung",
		Capacity:    40,
		Fare:        120000,
	}
}

func TestRouteServiceCreateValidates(t *testing.T) {
	svc, _ := newRouteService()

	cases := []struct {
		name   string
		mutate func(*models.Route)
	}{
		{"missing origin", func(r *models.Route) { r.Origin = " " }},
		{"missing destination", func(r *models.Route) { r.Destination = "" }},
		{"missing vendor", func(r *models.Route) { r.VendorID = 0 }},
		{"zero capacity", func(r *models.Route) { r.Capacity = 0 }},
		{"negative capacity", func(r *models.Route) { r.Capacity = -5 }},
		{"bogus status", func(r *models.Route) { r.Status = "paused" }},
	}
	for _, tc := range cases {
		r := validRoute()
		tc.mutate(&r)
		if _, err := svc.Create(r); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	created, err := svc.Create(validRoute())
	if err != nil {
		t.Fatalf("valid create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("id not assigned")
	}
}

func TestRouteServiceUpdateRejectsBadStatus(t *testing.T) {
	svc, _ := newRouteService()
	created, _ := svc.Create(validRoute())

	bad := "unknown"
	if _, err := svc.Update(created.ID, models.RoutePatch{Status: &bad}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	ok := models.RouteStatusCancelled
	updated, err := svc.Update(created.ID, models.RoutePatch{Status: &ok})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.RouteStatusCancelled {
		t.Fatalf("status not updated: %q", updated.Status)
	}
}

func TestRouteServiceSeatsScenario(t *testing.T) {
	svc, _ := newRouteService()
	created, _ := svc.Create(validRoute())

	for _, seat := range []int{5, 12, 39} {
		if _, err := svc.BookSeat(created.ID, seat); err != nil {
			t.Fatalf("book seat %d: %v", seat, err)
		}
	}

	seats, err := svc.Seats(created.ID)
	if err != nil {
		t.Fatalf("seats: %v", err)
	}
	if len(seats) != 40 {
		t.Fatalf("expected 40 seats, got %d", len(seats))
	}
	for _, seat := range seats {
		booked := seat.Number == 5 || seat.Number == 12 || seat.Number == 39
		if booked && seat.Status != domain.SeatBooked {
			t.Fatalf("seat %d should be booked", seat.Number)
		}
		if !booked && seat.Status != domain.SeatAvailable {
			t.Fatalf("seat %d should be available", seat.Number)
		}
	}
}

func TestRouteServiceSeatsNotFound(t *testing.T) {
	svc, _ := newRouteService()
	if _, err := svc.Seats(12345); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRouteServiceSeatsDecoratesPassengerNames(t *testing.T) {
	svc, _ := newRouteService()
	created, _ := svc.Create(validRoute())
	_, _ = svc.BookSeat(created.ID, 3)

	svc.SeatPassengers = func(routeID int64) (map[int]string, error) {
		return map[int]string{3: "Ayu Lestari"}, nil
	}

	seats, err := svc.Seats(created.ID)
	if err != nil {
		t.Fatalf("seats: %v", err)
	}
	if seats[2].PassengerName != "Ayu Lestari" {
		t.Fatalf("passenger name not decorated: %+v", seats[2])
	}
	if seats[0].PassengerName != "" {
		t.Fatalf("available seat should have no passenger name")
	}
}

func TestRouteServiceDoubleBooking(t *testing.T) {
	svc, _ := newRouteService()
	created, _ := svc.Create(validRoute())

	if _, err := svc.BookSeat(created.ID, 5); err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if _, err := svc.BookSeat(created.ID, 5); !domain.IsConflict(err) {
		t.Fatalf("expected already-booked conflict, got %v", err)
	}

	route, _ := svc.Get(created.ID)
	if len(route.BookedSeats) != 1 || route.BookedSeats[0] != 5 {
		t.Fatalf("booked set should still equal {5}, got %v", route.BookedSeats)
	}
}
