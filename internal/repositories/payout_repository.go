package repositories

import (
	"database/sql"

	intdb "travelease/internal/db"
	"travelease/internal/domain"
	"travelease/internal/domain/models"
)

type PayoutRepository struct {
	DB *sql.DB
}

func (r PayoutRepository) ListByProvider(providerID int64) ([]models.Payout, error) {
	rows, err := r.DB.Query(`
		SELECT id, provider_id, amount, status, created_at
		FROM payouts WHERE provider_id=? ORDER BY created_at DESC
	`, providerID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to query payouts", Err: err}
	}
	defer rows.Close()

	out := []models.Payout{}
	for rows.Next() {
		var p models.Payout
		if err := rows.Scan(&p.ID, &p.ProviderID, &p.Amount, &p.Status, &p.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "failed to scan payout", Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PendingBalance sums the provider's pending payouts.
func (r PayoutRepository) PendingBalance(providerID int64) (float64, error) {
	var sum float64
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM payouts WHERE provider_id=? AND status=?
	`, providerID, models.PayoutPending).Scan(&sum)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to sum pending payouts", Err: err}
	}
	return sum, nil
}

// SettleAllPending flips every pending payout of the provider to completed
// and reports how many rows flipped and their summed amount. Sum and update
// run in one transaction with the rows locked, so the reported amount is
// exactly what was settled even with concurrent settlements landing.
// Deliberately coarse-grained: the withdrawal action clears the whole
// pending balance, not a single payout.
func (r PayoutRepository) SettleAllPending(providerID int64) (int64, float64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, 0, domain.InternalError{Msg: "failed to begin withdrawal", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var sum float64
	err = tx.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM payouts WHERE provider_id=? AND status=? FOR UPDATE
	`, providerID, models.PayoutPending).Scan(&sum)
	if err != nil {
		return 0, 0, domain.InternalError{Msg: "failed to sum pending payouts", Err: err}
	}

	res, err := tx.Exec(`
		UPDATE payouts SET status=? WHERE provider_id=? AND status=?
	`, models.PayoutCompleted, providerID, models.PayoutPending)
	if err != nil {
		return 0, 0, domain.InternalError{Msg: "failed to settle payouts", Err: err}
	}
	n, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return 0, 0, domain.InternalError{Msg: "failed to commit withdrawal", Err: err}
	}
	return n, sum, nil
}

// EnsureTable creates the payouts table when it is missing. Keeps fresh
// deployments working before migrations run.
func (r PayoutRepository) EnsureTable() error {
	if intdb.HasTable(r.DB, "payouts") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS payouts (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	provider_id BIGINT NOT NULL,
	amount DECIMAL(12,2) NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_provider_status (provider_id, status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := r.DB.Exec(ddl)
	return err
}
