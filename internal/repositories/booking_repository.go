package repositories

import (
	"database/sql"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `id, reference, user_id, booking_type, service_id, start_date, end_date, total_amount, status, payment_status, COALESCE(payment_id, ''), created_at`

// Insert persists a new booking intent. The caller has already computed the
// derived fields; status must be (pending, pending).
func (r BookingRepository) Insert(b models.Booking) (int64, error) {
	var end any
	if b.EndDate != nil {
		end = *b.EndDate
	}
	res, err := r.DB.Exec(`
		INSERT INTO bookings (reference, user_id, booking_type, service_id, start_date, end_date, total_amount, status, payment_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.Reference, b.UserID, string(b.Kind), b.ServiceID, b.StartDate, end, b.TotalAmount, b.Status, b.PaymentStatus)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to insert booking", Err: err}
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=?`, id)
	return scanBooking(row)
}

// GetOwned loads a booking only when it belongs to the given user.
func (r BookingRepository) GetOwned(id, userID int64) (models.Booking, error) {
	row := r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? AND user_id=?`, id, userID)
	return scanBooking(row)
}

func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.DB.Query(`SELECT `+bookingColumns+` FROM bookings WHERE user_id=? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query bookings", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b    models.Booking
		kind string
		end  sql.NullTime
	)
	err := row.Scan(&b.ID, &b.Reference, &b.UserID, &kind, &b.ServiceID,
		&b.StartDate, &end, &b.TotalAmount, &b.Status, &b.PaymentStatus, &b.PaymentRef, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to scan booking", Err: err}
	}
	b.Kind = models.ServiceKind(kind)
	if end.Valid {
		t := end.Time
		b.EndDate = &t
	}
	return b, nil
}
