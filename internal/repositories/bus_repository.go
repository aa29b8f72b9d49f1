package repositories

import (
	"database/sql"
	"strings"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type BusRepository struct {
	DB *sql.DB
}

const busColumns = `id, provider_id, operator, source, destination, departure_time, arrival_time, price, available_seats, rating, rating_count`

// Search matches source/destination as case-insensitive substrings. Date
// input collected by the UI is deliberately not part of the match; routes
// run daily and the travel date is only fixed at booking time.
func (r BusRepository) Search(source, destination string) ([]models.BusRoute, error) {
	query := `SELECT ` + busColumns + ` FROM buses`
	conds := []string{}
	args := []any{}
	if s := strings.TrimSpace(source); s != "" {
		conds = append(conds, `LOWER(source) LIKE ?`)
		args = append(args, "%"+strings.ToLower(s)+"%")
	}
	if d := strings.TrimSpace(destination); d != "" {
		conds = append(conds, `LOWER(destination) LIKE ?`)
		args = append(args, "%"+strings.ToLower(d)+"%")
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query bus routes", Err: err}
	}
	defer rows.Close()

	out := []models.BusRoute{}
	for rows.Next() {
		var b models.BusRoute
		if err := rows.Scan(&b.ID, &b.ProviderID, &b.Operator, &b.Source, &b.Destination,
			&b.DepartureTime, &b.ArrivalTime, &b.Price, &b.AvailableSeats, &b.Rating, &b.RatingCount); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan bus route", Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BusRepository) GetByID(id int64) (models.BusRoute, error) {
	var b models.BusRoute
	err := r.DB.QueryRow(`SELECT `+busColumns+` FROM buses WHERE id=?`, id).
		Scan(&b.ID, &b.ProviderID, &b.Operator, &b.Source, &b.Destination,
			&b.DepartureTime, &b.ArrivalTime, &b.Price, &b.AvailableSeats, &b.Rating, &b.RatingCount)
	if err == sql.ErrNoRows {
		return models.BusRoute{}, domain.NotFoundError{Resource: "bus route", Err: err}
	}
	if err != nil {
		return models.BusRoute{}, domain.InternalError{Msg: "failed to load bus route", Err: err}
	}
	return b, nil
}

func (r BusRepository) Insert(b models.BusRoute) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO buses (provider_id, operator, source, destination, departure_time, arrival_time, price, available_seats, rating, rating_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0)
	`, b.ProviderID, b.Operator, b.Source, b.Destination, b.DepartureTime, b.ArrivalTime, b.Price, b.AvailableSeats)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to insert bus route", Err: err}
	}
	return res.LastInsertId()
}

func (r BusRepository) Update(b models.BusRoute) error {
	res, err := r.DB.Exec(`
		UPDATE buses
		SET operator=?, source=?, destination=?, departure_time=?, arrival_time=?, price=?, available_seats=?
		WHERE id=? AND provider_id=?
	`, b.Operator, b.Source, b.Destination, b.DepartureTime, b.ArrivalTime, b.Price, b.AvailableSeats, b.ID, b.ProviderID)
	if err != nil {
		return domain.InternalError{Msg: "failed to update bus route", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "bus route"}
	}
	return nil
}

func (r BusRepository) ListByProvider(providerID int64) ([]models.BusRoute, error) {
	rows, err := r.DB.Query(`SELECT `+busColumns+` FROM buses WHERE provider_id=?`, providerID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query provider buses", Err: err}
	}
	defer rows.Close()

	out := []models.BusRoute{}
	for rows.Next() {
		var b models.BusRoute
		if err := rows.Scan(&b.ID, &b.ProviderID, &b.Operator, &b.Source, &b.Destination,
			&b.DepartureTime, &b.ArrivalTime, &b.Price, &b.AvailableSeats, &b.Rating, &b.RatingCount); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan bus route", Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
