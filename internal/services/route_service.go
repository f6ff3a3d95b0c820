package services

import (
	"fmt"
	"strings"

	"buslink/internal/domain"
	"buslink/internal/domain/models"
	"buslink/internal/repositories"
	"buslink/internal/utils"
)

// RouteService orchestrates route CRUD and the seat inventory view.
type RouteService struct {
	Store     repositories.RouteStore
	RequestID string

	// SeatPassengers decorates the seat map with customer names from
	// tickets. Optional; nil leaves passenger names empty.
	SeatPassengers func(routeID int64) (map[int]string, error)
}

func (s RouteService) Create(route models.Route) (models.Route, error) {
	route.Origin = strings.TrimSpace(route.Origin)
	route.Destination = strings.TrimSpace(route.Destination)

	if route.Origin == "" {
		return models.Route{}, domain.ValidationError{Field: "origin", Msg: "required"}
	}
	if route.Destination == "" {
		return models.Route{}, domain.ValidationError{Field: "destination", Msg: "required"}
	}
	if route.VendorID <= 0 {
		return models.Route{}, domain.ValidationError{Field: "vendorId", Msg: "required"}
	}
	if route.Capacity <= 0 {
		return models.Route{}, domain.ValidationError{Field: "capacity", Msg: "must be positive"}
	}
	if route.Status != "" && !models.ValidRouteStatus(route.Status) {
		return models.Route{}, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}

	created, err := s.Store.Create(route)
	if err != nil {
		return models.Route{}, err
	}
	utils.LogEvent(s.RequestID, "route", "create", fmt.Sprintf("route_id=%d", created.ID))
	return created, nil
}

func (s RouteService) List() ([]models.Route, error) {
	return s.Store.FindAll()
}

func (s RouteService) Get(id int64) (models.Route, error) {
	return s.Store.FindOne(id)
}

func (s RouteService) Update(id int64, patch models.RoutePatch) (models.Route, error) {
	if patch.Status != nil && !models.ValidRouteStatus(*patch.Status) {
		return models.Route{}, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	if patch.Capacity != nil && *patch.Capacity <= 0 {
		return models.Route{}, domain.ValidationError{Field: "capacity", Msg: "must be positive"}
	}

	updated, err := s.Store.Update(id, patch)
	if err != nil {
		return models.Route{}, err
	}
	utils.LogEvent(s.RequestID, "route", "update", fmt.Sprintf("route_id=%d", id))
	return updated, nil
}

func (s RouteService) Delete(id int64) (models.Route, error) {
	removed, err := s.Store.Remove(id)
	if err != nil {
		return models.Route{}, err
	}
	utils.LogEvent(s.RequestID, "route", "delete", fmt.Sprintf("route_id=%d", id))
	return removed, nil
}

// Seats returns the derived availability view for a route.
func (s RouteService) Seats(id int64) ([]domain.Seat, error) {
	route, err := s.Store.FindOne(id)
	if err != nil {
		return nil, err
	}

	seats := domain.BuildSeatMap(route.Capacity, route.BookedSeats)

	if s.SeatPassengers != nil {
		names, err := s.SeatPassengers(id)
		if err == nil {
			for i := range seats {
				if seats[i].Status != domain.SeatBooked {
					continue
				}
				seats[i].PassengerName = names[seats[i].Number]
			}
		}
	}
	return seats, nil
}

func (s RouteService) BookSeat(id int64, seat int) (models.Route, error) {
	route, err := s.Store.BookSeat(id, seat)
	if err != nil {
		return models.Route{}, err
	}
	utils.LogEvent(s.RequestID, "route", "book_seat", fmt.Sprintf("route_id=%d seat=%d", id, seat))
	return route, nil
}

func (s RouteService) UnbookSeat(id int64, seat int) (models.Route, error) {
	route, err := s.Store.UnbookSeat(id, seat)
	if err != nil {
		return models.Route{}, err
	}
	utils.LogEvent(s.RequestID, "route", "unbook_seat", fmt.Sprintf("route_id=%d seat=%d", id, seat))
	return route, nil
}
