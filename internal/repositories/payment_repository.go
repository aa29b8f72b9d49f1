package repositories

import (
	"database/sql"

	intdb "travelease/internal/db"
	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

const paymentColumns = `id, booking_id, amount, currency, status, payment_method, gateway_payment_id, gateway_order_id, created_at`

// GetByGatewayPaymentID resolves a payment by the gateway transaction id.
// Used to answer replayed callbacks with the original outcome.
func (r PaymentRepository) GetByGatewayPaymentID(gatewayPaymentID string) (models.Payment, error) {
	var p models.Payment
	err := r.DB.QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE gateway_payment_id=?`, gatewayPaymentID).
		Scan(&p.ID, &p.BookingID, &p.Amount, &p.Currency, &p.Status, &p.PaymentMethod,
			&p.GatewayPaymentID, &p.GatewayOrderID, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Payment{}, domain.NotFoundError{Resource: "payment", Err: err}
	}
	if err != nil {
		return models.Payment{}, domain.InternalError{Msg: "failed to load payment", Err: err}
	}
	return p, nil
}

// EnsureTable creates the payments table when it is missing. The unique key
// on gateway_payment_id is what makes settlement idempotent across
// instances: two concurrent inserts for the same gateway transaction cannot
// both succeed.
func (r PaymentRepository) EnsureTable() error {
	if intdb.HasTable(r.DB, "payments") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS payments (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	amount DECIMAL(12,2) NOT NULL,
	currency VARCHAR(8) NOT NULL DEFAULT 'INR',
	status VARCHAR(20) NOT NULL,
	payment_method VARCHAR(32) NOT NULL,
	gateway_payment_id VARCHAR(64) NOT NULL,
	gateway_order_id VARCHAR(64) NOT NULL DEFAULT '',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uq_gateway_payment (gateway_payment_id),
	KEY idx_booking (booking_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}

// EarningsByProvider joins payments to bookings whose target item belongs
// to the provider, across all three inventory variants.
func (r PaymentRepository) EarningsByProvider(providerID int64) ([]models.Payment, error) {
	rows, err := r.DB.Query(`
		SELECT p.id, p.booking_id, p.amount, p.currency, p.status, p.payment_method, p.gateway_payment_id, p.gateway_order_id, p.created_at
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE (b.booking_type = 'hotel' AND b.service_id IN (SELECT id FROM hotels WHERE provider_id = ?))
		   OR (b.booking_type = 'bus'   AND b.service_id IN (SELECT id FROM buses  WHERE provider_id = ?))
		   OR (b.booking_type = 'cab'   AND b.service_id IN (SELECT id FROM cabs   WHERE provider_id = ?))
		ORDER BY p.created_at DESC
	`, providerID, providerID, providerID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query provider earnings", Err: err}
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Currency, &p.Status, &p.PaymentMethod,
			&p.GatewayPaymentID, &p.GatewayOrderID, &p.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan payment", Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
