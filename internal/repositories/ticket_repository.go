package repositories

import (
	"database/sql"
	"strings"

	intconfig "buslink/internal/config"
	"buslink/internal/domain"
	"buslink/internal/domain/models"
)

const ticketColumns = `id, route_id, vendor_id, booking_ref, customer_name, customer_email, customer_phone, seat_number, amount, status, travel_date, created_at, updated_at`

// DBTX lets ticket writes run on either the shared pool or an open
// transaction, so seat booking and ticket insertion commit together.
type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

type TicketFilter struct {
	RouteID       int64
	VendorID      int64
	Status        string
	CustomerEmail string
}

func (r TicketRepository) FindAll(f TicketFilter) ([]models.Ticket, error) {
	where := []string{}
	args := []any{}
	if f.RouteID > 0 {
		where = append(where, "route_id = ?")
		args = append(args, f.RouteID)
	}
	if f.VendorID > 0 {
		where = append(where, "vendor_id = ?")
		args = append(args, f.VendorID)
	}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.CustomerEmail != "" {
		where = append(where, "customer_email = ?")
		args = append(args, f.CustomerEmail)
	}

	query := `SELECT ` + ticketColumns + ` FROM tickets`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TicketRepository) FindOne(id int64) (models.Ticket, error) {
	t, err := scanTicket(r.db().QueryRow(`SELECT `+ticketColumns+` FROM tickets WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
	}
	return t, err
}

// Insert writes a ticket row on q, which may be a transaction shared
// with the route seat update.
func (r TicketRepository) Insert(q DBTX, t models.Ticket) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO tickets
			(route_id, vendor_id, booking_ref, customer_name, customer_email, customer_phone, seat_number, amount, status, travel_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		t.RouteID, t.VendorID, t.BookingRef, t.CustomerName, t.CustomerEmail, t.CustomerPhone,
		t.SeatNumber, t.Amount, t.Status, t.TravelDate,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateStatus flips a ticket status on q without transition checks;
// callers guard transitions via models.ValidTicketTransition.
func (r TicketRepository) UpdateStatus(q DBTX, id int64, status string) error {
	res, err := q.Exec(`UPDATE tickets SET status = ?, updated_at = NOW() WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "ticket"}
	}
	return nil
}

// SeatPassengers maps claimed seat numbers to customer names for the
// seat-map view. Cancelled and refunded tickets do not hold seats.
func (r TicketRepository) SeatPassengers(routeID int64) (map[int]string, error) {
	rows, err := r.db().Query(`
		SELECT seat_number, customer_name FROM tickets
		WHERE route_id = ? AND status IN ('pending', 'confirmed')`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int]string{}
	for rows.Next() {
		var (
			seat int
			name string
		)
		if err := rows.Scan(&seat, &name); err != nil {
			return out, err
		}
		out[seat] = name
	}
	return out, rows.Err()
}

func scanTicket(row rowScanner) (models.Ticket, error) {
	var (
		t      models.Ticket
		travel sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.RouteID, &t.VendorID, &t.BookingRef, &t.CustomerName, &t.CustomerEmail,
		&t.CustomerPhone, &t.SeatNumber, &t.Amount, &t.Status, &travel, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return models.Ticket{}, err
	}
	t.TravelDate = travel.String
	return t, nil
}
