package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/gateway"
	"travelease/internal/idempotency"
	"travelease/internal/metrics"
	"travelease/internal/repositories"
	"travelease/internal/utils"

	"github.com/go-sql-driver/mysql"
)

// PlatformFeeRate is deducted from the payment amount before payout.
const PlatformFeeRate = 0.10

// PayoutAmount is the provider's share of a settled payment.
func PayoutAmount(paymentAmount float64) float64 {
	return utils.Round2(paymentAmount * (1 - PlatformFeeRate))
}

// SettlementResult reports what one callback did.
type SettlementResult struct {
	BookingID       int64   `json:"booking_id"`
	PaymentID       int64   `json:"payment_id"`
	Amount          float64 `json:"amount"`
	PayoutScheduled bool    `json:"payout_scheduled"`
	AlreadySettled  bool    `json:"already_settled"`
}

// SettlementService reconciles a successful gateway payment against its
// booking. The whole sequence — payment insert, booking flip, payout
// schedule — runs in one transaction, so a booking can only read "paid"
// when its payment row exists, and no failure leaves a partial prefix
// behind. Replayed callbacks are answered with the original outcome: the
// idempotency store short-cuts them and the unique gateway payment id on
// the payments table is the authority.
type SettlementService struct {
	DB        *sql.DB
	Payments  repositories.PaymentRepository
	Idem      idempotency.Store
	Gateway   gateway.Client
	RequestID string
}

// errDuplicatePayment marks an insert that lost the race to another
// instance settling the same gateway transaction.
var errDuplicatePayment = errors.New("payment already recorded")

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func (s SettlementService) Settle(ctx context.Context, cb gateway.Callback) (SettlementResult, error) {
	if err := s.Gateway.VerifyCallback(cb); err != nil {
		metrics.IncSettlement("rejected")
		return SettlementResult{}, err
	}
	if cb.BookingID <= 0 {
		metrics.IncSettlement("rejected")
		return SettlementResult{}, domain.ValidationError{Field: "booking_id", Msg: "missing booking reference in callback notes"}
	}

	if err := s.Payments.EnsureTable(); err != nil {
		metrics.IncSettlement("failed")
		return SettlementResult{}, domain.InternalError{Msg: "payments table unavailable", Err: err}
	}

	if s.Idem != nil {
		fresh, err := s.Idem.Begin(ctx, cb.PaymentID)
		if err == nil && !fresh {
			return s.replayResult(cb)
		}
		// A store error only disables the fast path; the payments unique
		// key below still rejects duplicates.
	}

	res, err := s.settleTx(ctx, cb)
	if errors.Is(err, errDuplicatePayment) {
		// Another instance inserted this gateway transaction between our
		// pre-check and our insert; the unique key caught it. Answer with
		// the committed outcome.
		return s.replayResult(cb)
	}
	if err != nil {
		if s.Idem != nil && !res.AlreadySettled {
			_ = s.Idem.Release(ctx, cb.PaymentID)
		}
		if !res.AlreadySettled {
			metrics.IncSettlement("failed")
		}
		return res, err
	}

	if res.AlreadySettled {
		metrics.IncSettlement("replayed")
	} else {
		metrics.IncSettlement("ok")
		if res.PayoutScheduled {
			metrics.AddPayoutsScheduled(1)
		}
	}
	return res, nil
}

func (s SettlementService) settleTx(ctx context.Context, cb gateway.Callback) (SettlementResult, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return SettlementResult{}, domain.InternalError{Msg: "failed to begin settlement", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	// Step 0: replay check inside the transaction.
	var existingID int64
	var existingAmount float64
	err = tx.QueryRow(`SELECT id, amount FROM payments WHERE gateway_payment_id=?`, cb.PaymentID).
		Scan(&existingID, &existingAmount)
	if err == nil {
		return SettlementResult{
			BookingID:      cb.BookingID,
			PaymentID:      existingID,
			Amount:         existingAmount,
			AlreadySettled: true,
		}, nil
	}
	if err != sql.ErrNoRows {
		return SettlementResult{}, domain.InternalError{Msg: "failed to check existing payment", Err: err}
	}

	// Step 1: load the booking the callback claims to settle.
	var (
		kind        string
		serviceID   int64
		totalAmount float64
		status      string
	)
	err = tx.QueryRow(`SELECT booking_type, service_id, total_amount, status FROM bookings WHERE id=?`, cb.BookingID).
		Scan(&kind, &serviceID, &totalAmount, &status)
	if err == sql.ErrNoRows {
		return SettlementResult{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return SettlementResult{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if status == models.BookingCancelled {
		return SettlementResult{}, domain.ConflictError{Resource: "booking", Msg: "cancelled bookings cannot be settled"}
	}

	amount := Payable(totalAmount)

	// Step 2: record the payment.
	res, err := tx.Exec(`
		INSERT INTO payments (booking_id, amount, currency, status, payment_method, gateway_payment_id, gateway_order_id)
		VALUES (?, ?, 'INR', ?, 'razorpay', ?, ?)
	`, cb.BookingID, amount, models.PaymentCompleted, cb.PaymentID, cb.OrderID)
	if err != nil {
		if isDuplicateKey(err) {
			return SettlementResult{AlreadySettled: true}, errDuplicatePayment
		}
		return SettlementResult{}, domain.InternalError{Msg: "failed to record payment", Err: err}
	}
	paymentID, _ := res.LastInsertId()

	// Step 3: flip the booking. The payment row already exists in this
	// transaction, so "paid" never precedes its payment.
	if _, err := tx.Exec(`
		UPDATE bookings SET payment_status=?, status=?, payment_id=? WHERE id=?
	`, models.PaymentStatusPaid, models.BookingConfirmed, cb.PaymentID, cb.BookingID); err != nil {
		return SettlementResult{}, domain.InternalError{Msg: "failed to confirm booking", Err: err}
	}

	out := SettlementResult{
		BookingID: cb.BookingID,
		PaymentID: paymentID,
		Amount:    amount,
	}

	// Step 4: schedule the provider payout, net of the platform fee. An
	// unresolvable provider skips the payout rather than failing the
	// settlement; the money stays with the platform until reconciled.
	providerID, err := s.resolveProvider(tx, models.ServiceKind(kind), serviceID)
	if err != nil {
		return SettlementResult{}, err
	}
	if providerID > 0 {
		if _, err := tx.Exec(`
			INSERT INTO payouts (provider_id, amount, status) VALUES (?, ?, ?)
		`, providerID, PayoutAmount(amount), models.PayoutPending); err != nil {
			return SettlementResult{}, domain.InternalError{Msg: "failed to schedule payout", Err: err}
		}
		out.PayoutScheduled = true
	} else {
		utils.LogWarn(s.RequestID, "settlement", "payout",
			fmt.Sprintf("booking_id=%d type=%s service_id=%d has no resolvable provider, payout skipped", cb.BookingID, kind, serviceID))
	}

	if err := tx.Commit(); err != nil {
		return SettlementResult{}, domain.InternalError{Msg: "failed to commit settlement", Err: err}
	}

	utils.LogEvent(s.RequestID, "settlement", "settle",
		fmt.Sprintf("booking_id=%d payment_id=%d amount=%s payout=%t", cb.BookingID, paymentID, utils.FormatMoney(amount), out.PayoutScheduled))

	return out, nil
}

// resolveProvider maps the booking variant to its inventory table and looks
// up the owning provider. Returns 0 when the variant or row is unknown.
func (s SettlementService) resolveProvider(tx *sql.Tx, kind models.ServiceKind, serviceID int64) (int64, error) {
	var table string
	switch kind {
	case models.KindHotel:
		table = "hotels"
	case models.KindBus:
		table = "buses"
	case models.KindCab:
		table = "cabs"
	default:
		return 0, nil
	}

	var providerID int64
	err := tx.QueryRow(`SELECT provider_id FROM `+table+` WHERE id=?`, serviceID).Scan(&providerID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to resolve provider", Err: err}
	}
	return providerID, nil
}

func (s SettlementService) replayResult(cb gateway.Callback) (SettlementResult, error) {
	p, err := s.Payments.GetByGatewayPaymentID(cb.PaymentID)
	if err != nil {
		if domain.IsNotFound(err) {
			// Marked but not recorded: another settlement for this payment
			// is still in flight.
			return SettlementResult{}, domain.ConflictError{Resource: "settlement", Msg: "already in progress"}
		}
		return SettlementResult{}, err
	}
	metrics.IncSettlement("replayed")
	utils.LogEvent(s.RequestID, "settlement", "replay",
		fmt.Sprintf("payment_id=%s already settled, booking_id=%d", cb.PaymentID, p.BookingID))
	return SettlementResult{
		BookingID:      p.BookingID,
		PaymentID:      p.ID,
		Amount:         p.Amount,
		AlreadySettled: true,
	}, nil
}
