package repositories

import (
	"database/sql"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type ProviderRepository struct {
	DB *sql.DB
}

func (r ProviderRepository) GetByProfileID(profileID int64) (models.Provider, error) {
	var p models.Provider
	err := r.DB.QueryRow(`
		SELECT id, profile_id, company_name, created_at FROM service_providers WHERE profile_id=?
	`, profileID).Scan(&p.ID, &p.ProfileID, &p.CompanyName, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Provider{}, domain.NotFoundError{Resource: "provider", Err: err}
	}
	if err != nil {
		return models.Provider{}, domain.InternalError{Msg: "failed to load provider", Err: err}
	}
	return p, nil
}

func (r ProviderRepository) Insert(p models.Provider) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO service_providers (profile_id, company_name) VALUES (?, ?)
	`, p.ProfileID, p.CompanyName)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to insert provider", Err: err}
	}
	return res.LastInsertId()
}
