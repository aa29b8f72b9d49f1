package services

import (
	"regexp"
	"testing"
	"time"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newProviderService(t *testing.T) (ProviderService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := ProviderService{
		Providers: repositories.ProviderRepository{DB: db},
		Hotels:    repositories.HotelRepository{DB: db},
		Buses:     repositories.BusRepository{DB: db},
		Cabs:      repositories.CabRepository{DB: db},
		Payments:  repositories.PaymentRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestRegisterProvider(t *testing.T) {
	svc, mock, cleanup := newProviderService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM service_providers WHERE profile_id=?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO service_providers (profile_id, company_name) VALUES (?, ?)`)).
		WithArgs(int64(1), "Sunrise Travels").
		WillReturnResult(sqlmock.NewResult(3, 1))

	p, err := svc.Register(user, "  Sunrise   Travels ")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.ID != 3 {
		t.Errorf("id = %d, want 3", p.ID)
	}
	if p.CompanyName != "Sunrise Travels" {
		t.Errorf("company = %q", p.CompanyName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterProviderTwiceConflicts(t *testing.T) {
	svc, mock, cleanup := newProviderService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM service_providers WHERE profile_id=?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "company_name", "created_at"}).
			AddRow(3, 1, "Sunrise Travels", time.Now()))

	_, err := svc.Register(user, "Another Name")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAddHotelStampsProvider(t *testing.T) {
	svc, mock, cleanup := newProviderService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM service_providers WHERE profile_id=?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "company_name", "created_at"}).
			AddRow(3, 1, "Sunrise Travels", time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO hotels`)).
		WithArgs(int64(3), "Sea View", "Goa", "", 1200.0, "null", "null").
		WillReturnResult(sqlmock.NewResult(7, 1))

	h, err := svc.AddHotel(user, models.Hotel{Name: "Sea View", Location: "Goa", PricePerNight: 1200})
	if err != nil {
		t.Fatalf("add hotel: %v", err)
	}
	if h.ProviderID != 3 {
		t.Errorf("provider_id = %d, want 3", h.ProviderID)
	}
	if h.ID != 7 {
		t.Errorf("id = %d, want 7", h.ID)
	}
}

func TestAddHotelValidation(t *testing.T) {
	svc, mock, cleanup := newProviderService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM service_providers WHERE profile_id=?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "company_name", "created_at"}).
			AddRow(3, 1, "Sunrise Travels", time.Now()))

	_, err := svc.AddHotel(user, models.Hotel{Name: "", Location: "Goa", PricePerNight: 1200})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProviderEarnings(t *testing.T) {
	svc, mock, cleanup := newProviderService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM service_providers WHERE profile_id=?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "profile_id", "company_name", "created_at"}).
			AddRow(3, 1, "Sunrise Travels", time.Now()))
	mock.ExpectQuery(`JOIN bookings b ON b.id = p.booking_id`).
		WithArgs(int64(3), int64(3), int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_id", "amount", "currency", "status", "payment_method", "gateway_payment_id", "gateway_order_id", "created_at"}).
			AddRow(11, 42, 590.0, "INR", "completed", "razorpay", "pay_1", "order_1", time.Now()))

	payments, err := svc.Earnings(user)
	if err != nil {
		t.Fatalf("earnings: %v", err)
	}
	if len(payments) != 1 || payments[0].Amount != 590.0 {
		t.Errorf("payments = %+v", payments)
	}
}
