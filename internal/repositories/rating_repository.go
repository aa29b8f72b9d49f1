package repositories

import (
	"database/sql"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

// RatingRepository reads and updates the cumulative rating columns shared
// by the hotel and bus tables.
type RatingRepository struct {
	DB *sql.DB
}

func ratingTable(kind models.ServiceKind) (string, error) {
	switch kind {
	case models.KindHotel:
		return "hotels", nil
	case models.KindBus:
		return "buses", nil
	default:
		return "", domain.ValidationError{Field: "booking_type", Msg: "ratings apply to hotels and buses only"}
	}
}

func (r RatingRepository) Get(kind models.ServiceKind, id int64) (rating float64, count int64, err error) {
	table, err := ratingTable(kind)
	if err != nil {
		return 0, 0, err
	}
	err = r.DB.QueryRow(`SELECT rating, rating_count FROM `+table+` WHERE id=?`, id).Scan(&rating, &count)
	if err == sql.ErrNoRows {
		return 0, 0, domain.NotFoundError{Resource: string(kind), Err: err}
	}
	if err != nil {
		return 0, 0, domain.InternalError{Msg: "failed to load rating", Err: err}
	}
	return rating, count, nil
}

// UpdateGuarded applies the new cumulative mean only if rating_count still
// matches the value the caller read. Returns false when a concurrent rater
// got there first.
func (r RatingRepository) UpdateGuarded(kind models.ServiceKind, id int64, newRating float64, newCount, expectedCount int64) (bool, error) {
	table, err := ratingTable(kind)
	if err != nil {
		return false, err
	}
	res, err := r.DB.Exec(`
		UPDATE `+table+` SET rating=?, rating_count=? WHERE id=? AND rating_count=?
	`, newRating, newCount, id, expectedCount)
	if err != nil {
		return false, domain.InternalError{Msg: "failed to update rating", Err: err}
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
