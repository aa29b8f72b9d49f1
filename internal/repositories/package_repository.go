package repositories

import (
	"database/sql"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) List() ([]models.TourPackage, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, description, price, duration_days, COALESCE(image, '')
		FROM packages ORDER BY price
	`)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query packages", Err: err}
	}
	defer rows.Close()

	out := []models.TourPackage{}
	for rows.Next() {
		var p models.TourPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DurationDays, &p.Image); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan package", Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
