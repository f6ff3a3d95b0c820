package services

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	intconfig "buslink/internal/config"
	intdb "buslink/internal/db"
	"buslink/internal/domain"
	"buslink/internal/domain/models"
	"buslink/internal/repositories"
	"buslink/internal/utils"

	"github.com/google/uuid"
)

// TicketService keeps a ticket row and its route's booked-seats set in
// step: creating a ticket claims the seat and inserts the row in one
// transaction, cancelling releases the seat the same way.
type TicketService struct {
	DB            *sql.DB
	Tickets       repositories.TicketRepository
	Notifications repositories.NotificationRepository
	RequestID     string

	// NewRef is swappable in tests; defaults to a uuid-derived code.
	NewRef func() string
}

func (s TicketService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s TicketService) newRef() string {
	if s.NewRef != nil {
		return s.NewRef()
	}
	return "BLK-" + strings.ToUpper(uuid.NewString()[:8])
}

type CreateTicketInput struct {
	RouteID       int64  `json:"routeId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	SeatNumber    int    `json:"seatNumber"`
	Amount        int64  `json:"amount"`
	TravelDate    string `json:"travelDate"`
}

func (s TicketService) Create(in CreateTicketInput) (models.Ticket, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.RouteID <= 0 {
		return models.Ticket{}, domain.ValidationError{Field: "routeId", Msg: "required"}
	}
	if in.CustomerName == "" {
		return models.Ticket{}, domain.ValidationError{Field: "customerName", Msg: "required"}
	}
	if in.TravelDate != "" {
		if _, err := utils.ParseDate(in.TravelDate); err != nil {
			return models.Ticket{}, domain.ValidationError{Field: "travelDate", Msg: "expected YYYY-MM-DD"}
		}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Ticket{}, err
	}
	defer tx.Rollback()

	var (
		route  models.Route
		booked sql.NullString
	)
	err = tx.QueryRow(`SELECT id, vendor_id, fare, capacity, status, booked_seats FROM routes WHERE id = ? FOR UPDATE`, in.RouteID).
		Scan(&route.ID, &route.VendorID, &route.Fare, &route.Capacity, &route.Status, &booked)
	if err == sql.ErrNoRows {
		return models.Ticket{}, domain.NotFoundError{Resource: "route"}
	}
	if err != nil {
		return models.Ticket{}, err
	}
	route.BookedSeats = intdb.DecodeIntList(booked.String)

	if route.Status != models.RouteStatusActive {
		return models.Ticket{}, domain.ConflictError{Resource: "route", Msg: "not open for booking"}
	}
	if err := domain.BookSeat(&route, in.SeatNumber); err != nil {
		return models.Ticket{}, err
	}

	if _, err := tx.Exec(`UPDATE routes SET booked_seats = ?, updated_at = NOW() WHERE id = ?`,
		intdb.EncodeIntList(route.BookedSeats), in.RouteID); err != nil {
		return models.Ticket{}, err
	}

	amount := in.Amount
	if amount == 0 {
		amount = route.Fare
	}

	ticket := models.Ticket{
		RouteID:       in.RouteID,
		VendorID:      route.VendorID,
		BookingRef:    s.newRef(),
		CustomerName:  in.CustomerName,
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		SeatNumber:    in.SeatNumber,
		Amount:        amount,
		Status:        models.TicketStatusPending,
		TravelDate:    strings.TrimSpace(in.TravelDate),
	}
	id, err := s.Tickets.Insert(tx, ticket)
	if err != nil {
		return models.Ticket{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Ticket{}, err
	}

	utils.LogEvent(s.RequestID, "ticket", "create",
		fmt.Sprintf("ticket_id=%d route_id=%d seat=%d ref=%s", id, in.RouteID, in.SeatNumber, ticket.BookingRef))
	s.notifyVendor(route.VendorID, "New booking",
		fmt.Sprintf("Seat %d on route %d booked (ref %s)", in.SeatNumber, in.RouteID, ticket.BookingRef))

	return s.Tickets.FindOne(id)
}

func (s TicketService) Confirm(id int64) (models.Ticket, error) {
	return s.transition(id, models.TicketStatusConfirmed)
}

func (s TicketService) Refund(id int64) (models.Ticket, error) {
	return s.transition(id, models.TicketStatusRefunded)
}

// transition applies a status change that does not touch the seat map.
func (s TicketService) transition(id int64, to string) (models.Ticket, error) {
	ticket, err := s.Tickets.FindOne(id)
	if err != nil {
		return models.Ticket{}, err
	}
	if !models.ValidTicketTransition(ticket.Status, to) {
		return models.Ticket{}, domain.ConflictError{
			Resource: "ticket",
			Msg:      fmt.Sprintf("cannot move from %s to %s", ticket.Status, to),
		}
	}
	if err := s.Tickets.UpdateStatus(s.db(), id, to); err != nil {
		return models.Ticket{}, err
	}
	utils.LogEvent(s.RequestID, "ticket", to, fmt.Sprintf("ticket_id=%d", id))
	return s.Tickets.FindOne(id)
}

// Cancel moves the ticket to cancelled and releases its seat in the
// same transaction. A seat already missing from the booked set is a
// historical inconsistency and does not block the cancellation.
func (s TicketService) Cancel(id int64) (models.Ticket, error) {
	ticket, err := s.Tickets.FindOne(id)
	if err != nil {
		return models.Ticket{}, err
	}
	if !models.ValidTicketTransition(ticket.Status, models.TicketStatusCancelled) {
		return models.Ticket{}, domain.ConflictError{
			Resource: "ticket",
			Msg:      fmt.Sprintf("cannot move from %s to %s", ticket.Status, models.TicketStatusCancelled),
		}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Ticket{}, err
	}
	defer tx.Rollback()

	var (
		route  models.Route
		booked sql.NullString
	)
	err = tx.QueryRow(`SELECT id, capacity, booked_seats FROM routes WHERE id = ? FOR UPDATE`, ticket.RouteID).
		Scan(&route.ID, &route.Capacity, &booked)
	switch {
	case err == sql.ErrNoRows:
		// route deleted since booking; nothing to release
	case err != nil:
		return models.Ticket{}, err
	default:
		route.BookedSeats = intdb.DecodeIntList(booked.String)
		if err := domain.UnbookSeat(&route, ticket.SeatNumber); err == nil {
			if _, err := tx.Exec(`UPDATE routes SET booked_seats = ?, updated_at = NOW() WHERE id = ?`,
				intdb.EncodeIntList(route.BookedSeats), ticket.RouteID); err != nil {
				return models.Ticket{}, err
			}
		} else if !domain.IsConflict(err) {
			return models.Ticket{}, err
		}
	}

	if err := s.Tickets.UpdateStatus(tx, id, models.TicketStatusCancelled); err != nil {
		return models.Ticket{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Ticket{}, err
	}

	utils.LogEvent(s.RequestID, "ticket", "cancel", fmt.Sprintf("ticket_id=%d", id))
	s.notifyVendor(ticket.VendorID, "Booking cancelled",
		fmt.Sprintf("Ticket %s for seat %d on route %d was cancelled", ticket.BookingRef, ticket.SeatNumber, ticket.RouteID))

	return s.Tickets.FindOne(id)
}

// notifyVendor is best effort; a failed notification never fails the
// booking operation itself.
func (s TicketService) notifyVendor(vendorID int64, title, body string) {
	if vendorID <= 0 {
		return
	}
	_, err := s.Notifications.Create(models.Notification{
		RecipientType: models.RecipientVendor,
		RecipientID:   vendorID,
		Title:         title,
		Body:          body,
	})
	if err != nil {
		log.Printf("[TICKET] notify vendor %d failed: %v", vendorID, err)
	}
}
