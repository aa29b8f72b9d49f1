package repositories

import (
	"database/sql"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type ProfileRepository struct {
	DB *sql.DB
}

func (r ProfileRepository) GetByID(id int64) (models.Profile, error) {
	var p models.Profile
	err := r.DB.QueryRow(`
		SELECT id, name, email, COALESCE(phone_number, ''), role, created_at
		FROM profiles WHERE id=?
	`, id).Scan(&p.ID, &p.Name, &p.Email, &p.PhoneNumber, &p.Role, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Profile{}, domain.NotFoundError{Resource: "profile", Err: err}
	}
	if err != nil {
		return models.Profile{}, domain.InternalError{Msg: "failed to load profile", Err: err}
	}
	return p, nil
}

// GetCredentials loads the profile plus password hash for login.
func (r ProfileRepository) GetCredentials(email string) (models.Profile, string, error) {
	var (
		p    models.Profile
		hash string
	)
	err := r.DB.QueryRow(`
		SELECT id, name, email, COALESCE(phone_number, ''), role, password_hash, created_at
		FROM profiles WHERE email=?
	`, email).Scan(&p.ID, &p.Name, &p.Email, &p.PhoneNumber, &p.Role, &hash, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Profile{}, "", domain.NotFoundError{Resource: "profile", Err: err}
	}
	if err != nil {
		return models.Profile{}, "", domain.InternalError{Msg: "failed to load credentials", Err: err}
	}
	return p, hash, nil
}

func (r ProfileRepository) EmailExists(email string) (bool, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM profiles WHERE email=?`, email).Scan(&count); err != nil {
		return false, domain.InternalError{Msg: "failed to check email", Err: err}
	}
	return count > 0, nil
}

func (r ProfileRepository) Insert(p models.Profile, passwordHash string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO profiles (name, email, phone_number, password_hash, role)
		VALUES (?, ?, ?, ?, 'user')
	`, p.Name, p.Email, p.PhoneNumber, passwordHash)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to insert profile", Err: err}
	}
	return res.LastInsertId()
}

func (r ProfileRepository) UpdateContact(id int64, name, phone string) error {
	res, err := r.DB.Exec(`
		UPDATE profiles SET name=?, phone_number=? WHERE id=?
	`, name, phone, id)
	if err != nil {
		return domain.InternalError{Msg: "failed to update profile", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "profile"}
	}
	return nil
}
