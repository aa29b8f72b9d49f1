package repositories

import (
	"database/sql"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type CabRepository struct {
	DB *sql.DB
}

const cabColumns = `id, provider_id, vehicle_type, base_price, price_per_km, available`

// ListAvailable returns cabs currently offerable.
func (r CabRepository) ListAvailable() ([]models.Cab, error) {
	rows, err := r.DB.Query(`SELECT ` + cabColumns + ` FROM cabs WHERE available=1`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query cabs", Err: err}
	}
	defer rows.Close()

	out := []models.Cab{}
	for rows.Next() {
		var c models.Cab
		if err := rows.Scan(&c.ID, &c.ProviderID, &c.VehicleType, &c.BasePrice, &c.PricePerKm, &c.Available); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan cab", Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CabRepository) GetByID(id int64) (models.Cab, error) {
	var c models.Cab
	err := r.DB.QueryRow(`SELECT `+cabColumns+` FROM cabs WHERE id=?`, id).
		Scan(&c.ID, &c.ProviderID, &c.VehicleType, &c.BasePrice, &c.PricePerKm, &c.Available)
	if err == sql.ErrNoRows {
		return models.Cab{}, domain.NotFoundError{Resource: "cab", Err: err}
	}
	if err != nil {
		return models.Cab{}, domain.InternalError{Msg: "failed to load cab", Err: err}
	}
	return c, nil
}

func (r CabRepository) Insert(c models.Cab) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO cabs (provider_id, vehicle_type, base_price, price_per_km, available)
		VALUES (?, ?, ?, ?, ?)
	`, c.ProviderID, c.VehicleType, c.BasePrice, c.PricePerKm, c.Available)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to insert cab", Err: err}
	}
	return res.LastInsertId()
}

func (r CabRepository) Update(c models.Cab) error {
	res, err := r.DB.Exec(`
		UPDATE cabs
		SET vehicle_type=?, base_price=?, price_per_km=?, available=?
		WHERE id=? AND provider_id=?
	`, c.VehicleType, c.BasePrice, c.PricePerKm, c.Available, c.ID, c.ProviderID)
	if err != nil {
		return domain.InternalError{Msg: "failed to update cab", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cab"}
	}
	return nil
}

func (r CabRepository) ListByProvider(providerID int64) ([]models.Cab, error) {
	rows, err := r.DB.Query(`SELECT `+cabColumns+` FROM cabs WHERE provider_id=?`, providerID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query provider cabs", Err: err}
	}
	defer rows.Close()

	out := []models.Cab{}
	for rows.Next() {
		var c models.Cab
		if err := rows.Scan(&c.ID, &c.ProviderID, &c.VehicleType, &c.BasePrice, &c.PricePerKm, &c.Available); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan cab", Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
