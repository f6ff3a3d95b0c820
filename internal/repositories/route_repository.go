package repositories

import (
	"database/sql"

	intconfig "buslink/internal/config"
	intdb "buslink/internal/db"
	"buslink/internal/domain"
	"buslink/internal/domain/models"
)

const routeColumns = `id, vendor_id, origin, destination, departure_time, arrival_time, days_of_week, stops, fare, capacity, status, booked_seats, created_at, updated_at`

// RouteRepository is the MySQL-backed RouteStore. Seat mutations run
// inside a transaction with a row lock so two concurrent bookings of
// the same seat cannot both commit.
type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RouteRepository) Create(route models.Route) (models.Route, error) {
	if route.Status == "" {
		route.Status = models.RouteStatusActive
	}
	res, err := r.db().Exec(`
		INSERT INTO routes
			(vendor_id, origin, destination, departure_time, arrival_time, days_of_week, stops, fare, capacity, status, booked_seats, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '[]', NOW(), NOW())`,
		route.VendorID,
		route.Origin,
		route.Destination,
		route.DepartureTime,
		route.ArrivalTime,
		intdb.EncodeStringList(route.DaysOfWeek),
		intdb.EncodeStringList(route.Stops),
		route.Fare,
		route.Capacity,
		route.Status,
	)
	if err != nil {
		return models.Route{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Route{}, err
	}
	return r.FindOne(id)
}

func (r RouteRepository) FindAll() ([]models.Route, error) {
	rows, err := r.db().Query(`SELECT ` + routeColumns + ` FROM routes ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return out, err
		}
		out = append(out, route)
	}
	return out, rows.Err()
}

func (r RouteRepository) FindOne(id int64) (models.Route, error) {
	row := r.db().QueryRow(`SELECT `+routeColumns+` FROM routes WHERE id = ?`, id)
	route, err := scanRoute(row)
	if err == sql.ErrNoRows {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	return route, err
}

func (r RouteRepository) Update(id int64, patch models.RoutePatch) (models.Route, error) {
	route, err := r.FindOne(id)
	if err != nil {
		return models.Route{}, err
	}
	patch.Apply(&route)

	_, err = r.db().Exec(`
		UPDATE routes
		SET vendor_id = ?, origin = ?, destination = ?, departure_time = ?, arrival_time = ?,
		    days_of_week = ?, stops = ?, fare = ?, capacity = ?, status = ?, updated_at = NOW()
		WHERE id = ?`,
		route.VendorID,
		route.Origin,
		route.Destination,
		route.DepartureTime,
		route.ArrivalTime,
		intdb.EncodeStringList(route.DaysOfWeek),
		intdb.EncodeStringList(route.Stops),
		route.Fare,
		route.Capacity,
		route.Status,
		id,
	)
	if err != nil {
		return models.Route{}, err
	}
	return r.FindOne(id)
}

func (r RouteRepository) Remove(id int64) (models.Route, error) {
	route, err := r.FindOne(id)
	if err != nil {
		return models.Route{}, err
	}
	if _, err := r.db().Exec(`DELETE FROM routes WHERE id = ?`, id); err != nil {
		return models.Route{}, err
	}
	return route, nil
}

func (r RouteRepository) BookSeat(id int64, seat int) (models.Route, error) {
	return r.mutateSeats(id, func(route *models.Route) error {
		return domain.BookSeat(route, seat)
	})
}

func (r RouteRepository) UnbookSeat(id int64, seat int) (models.Route, error) {
	return r.mutateSeats(id, func(route *models.Route) error {
		return domain.UnbookSeat(route, seat)
	})
}

// mutateSeats applies fn to the route's booked set under a row lock.
func (r RouteRepository) mutateSeats(id int64, fn func(*models.Route) error) (models.Route, error) {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return models.Route{}, err
	}
	defer tx.Rollback()

	var (
		route  models.Route
		booked sql.NullString
	)
	err = tx.QueryRow(`SELECT id, capacity, booked_seats FROM routes WHERE id = ? FOR UPDATE`, id).
		Scan(&route.ID, &route.Capacity, &booked)
	if err == sql.ErrNoRows {
		return models.Route{}, domain.NotFoundError{Resource: "route"}
	}
	if err != nil {
		return models.Route{}, err
	}
	route.BookedSeats = intdb.DecodeIntList(booked.String)

	if err := fn(&route); err != nil {
		return models.Route{}, err
	}

	_, err = tx.Exec(`UPDATE routes SET booked_seats = ?, updated_at = NOW() WHERE id = ?`,
		intdb.EncodeIntList(route.BookedSeats), id)
	if err != nil {
		return models.Route{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Route{}, err
	}
	return r.FindOne(id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoute(row rowScanner) (models.Route, error) {
	var (
		route       models.Route
		days, stops sql.NullString
		booked      sql.NullString
		depart, arr sql.NullString
	)
	err := row.Scan(
		&route.ID,
		&route.VendorID,
		&route.Origin,
		&route.Destination,
		&depart,
		&arr,
		&days,
		&stops,
		&route.Fare,
		&route.Capacity,
		&route.Status,
		&booked,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return models.Route{}, err
	}
	route.DepartureTime = depart.String
	route.ArrivalTime = arr.String
	route.DaysOfWeek = intdb.DecodeStringList(days.String)
	route.Stops = intdb.DecodeStringList(stops.String)
	route.BookedSeats = intdb.DecodeIntList(booked.String)
	return route, nil
}
