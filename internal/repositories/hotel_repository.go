package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type HotelRepository struct {
	DB *sql.DB
}

const hotelColumns = `id, provider_id, name, location, description, price_per_night, amenities, images, rating, rating_count`

// Search returns hotels whose location contains the given text,
// case-insensitive. An empty filter returns everything.
func (r HotelRepository) Search(location string) ([]models.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels`
	args := []any{}
	if loc := strings.TrimSpace(location); loc != "" {
		query += ` WHERE LOWER(location) LIKE ?`
		args = append(args, "%"+strings.ToLower(loc)+"%")
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query hotels", Err: err}
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "failed to scan hotel", Err: err}
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r HotelRepository) GetByID(id int64) (models.Hotel, error) {
	row := r.DB.QueryRow(`SELECT `+hotelColumns+` FROM hotels WHERE id=?`, id)
	h, err := scanHotel(row)
	if err == sql.ErrNoRows {
		return models.Hotel{}, domain.NotFoundError{Resource: "hotel", Err: err}
	}
	if err != nil {
		return models.Hotel{}, domain.InternalError{Msg: "failed to load hotel", Err: err}
	}
	return h, nil
}

func (r HotelRepository) Insert(h models.Hotel) (int64, error) {
	amenities, _ := json.Marshal(h.Amenities)
	images, _ := json.Marshal(h.Images)
	res, err := r.DB.Exec(`
		INSERT INTO hotels (provider_id, name, location, description, price_per_night, amenities, images, rating, rating_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0)
	`, h.ProviderID, h.Name, h.Location, h.Description, h.PricePerNight, string(amenities), string(images))
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to insert hotel", Err: err}
	}
	return res.LastInsertId()
}

// Update rewrites the listing fields owned by the provider. Ratings are
// never touched here.
func (r HotelRepository) Update(h models.Hotel) error {
	amenities, _ := json.Marshal(h.Amenities)
	images, _ := json.Marshal(h.Images)
	res, err := r.DB.Exec(`
		UPDATE hotels
		SET name=?, location=?, description=?, price_per_night=?, amenities=?, images=?
		WHERE id=? AND provider_id=?
	`, h.Name, h.Location, h.Description, h.PricePerNight, string(amenities), string(images), h.ID, h.ProviderID)
	if err != nil {
		return domain.InternalError{Msg: "failed to update hotel", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "hotel"}
	}
	return nil
}

func (r HotelRepository) ListByProvider(providerID int64) ([]models.Hotel, error) {
	rows, err := r.DB.Query(`SELECT `+hotelColumns+` FROM hotels WHERE provider_id=?`, providerID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query provider hotels", Err: err}
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "failed to scan hotel", Err: err}
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotel(row rowScanner) (models.Hotel, error) {
	var (
		h         models.Hotel
		amenities sql.NullString
		images    sql.NullString
	)
	err := row.Scan(&h.ID, &h.ProviderID, &h.Name, &h.Location, &h.Description,
		&h.PricePerNight, &amenities, &images, &h.Rating, &h.RatingCount)
	if err != nil {
		return models.Hotel{}, err
	}
	if amenities.Valid && amenities.String != "" {
		_ = json.Unmarshal([]byte(amenities.String), &h.Amenities)
	}
	if images.Valid && images.String != "" {
		_ = json.Unmarshal([]byte(images.String), &h.Images)
	}
	return h, nil
}
