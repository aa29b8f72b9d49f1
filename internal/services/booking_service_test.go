package services

import (
	"database/sql"
	"regexp"
	"testing"

	"travelease/internal/distance"
	"travelease/internal/domain"
	"travelease/internal/repositories"
	"travelease/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func newBookingService(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := BookingService{
		Bookings:  repositories.BookingRepository{DB: db},
		Hotels:    repositories.HotelRepository{DB: db},
		Buses:     repositories.BusRepository{DB: db},
		Cabs:      repositories.CabRepository{DB: db},
		Estimator: distance.Fixed(20),
	}
	return svc, mock, func() { db.Close() }
}

func TestCreateHotelBooking(t *testing.T) {
	svc, mock, cleanup := newBookingService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, location, description, price_per_night, amenities, images, rating, rating_count FROM hotels WHERE id=?`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "name", "location", "description", "price_per_night", "amenities", "images", "rating", "rating_count"}).
			AddRow(7, 3, "Sea View", "Goa", "", 1200.0, "[]", "[]", 4.2, 11))

	checkIn, _ := utils.ParseDate("2026-03-10")
	checkOut, _ := utils.ParseDate("2026-03-12")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs(sqlmock.AnyArg(), int64(1), "hotel", int64(7), checkIn, checkOut, 2400.0, "pending", "pending").
		WillReturnResult(sqlmock.NewResult(42, 1))

	booking, err := svc.Create(user, BookingRequest{
		Type:      "hotel",
		ServiceID: 7,
		CheckIn:   "2026-03-10",
		CheckOut:  "2026-03-12",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if booking.ID != 42 {
		t.Errorf("id = %d, want 42", booking.ID)
	}
	if booking.TotalAmount != 2400.0 {
		t.Errorf("total = %v, want 2400", booking.TotalAmount)
	}
	if booking.Status != "pending" || booking.PaymentStatus != "pending" {
		t.Errorf("state = (%s, %s), want (pending, pending)", booking.Status, booking.PaymentStatus)
	}
	if booking.Reference == "" {
		t.Error("booking reference is empty")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateCabBookingUsesEstimator(t *testing.T) {
	svc, mock, cleanup := newBookingService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, vehicle_type, base_price, price_per_km, available FROM cabs WHERE id=?`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "vehicle_type", "base_price", "price_per_km", "available"}).
			AddRow(9, 4, "sedan", 100.0, 12.0, true))

	travel, _ := utils.ParseDate("2026-05-01")
	// Fixed estimator: 20 km, so 100 + 12*20 = 340.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs(sqlmock.AnyArg(), int64(1), "cab", int64(9), travel, nil, 340.0, "pending", "pending").
		WillReturnResult(sqlmock.NewResult(43, 1))

	booking, err := svc.Create(user, BookingRequest{
		Type:       "cab",
		ServiceID:  9,
		TravelDate: "2026-05-01",
		Pickup:     "Airport",
		Dropoff:    "City Center",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if booking.TotalAmount != 340.0 {
		t.Errorf("total = %v, want 340", booking.TotalAmount)
	}
	if booking.EndDate != nil {
		t.Error("cab booking should have no end date")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateCabBookingFallbackEstimator(t *testing.T) {
	svc, mock, cleanup := newBookingService(t)
	defer cleanup()
	svc.Estimator = nil

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, vehicle_type, base_price, price_per_km, available FROM cabs WHERE id=?`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "provider_id", "vehicle_type", "base_price", "price_per_km", "available"}).
			AddRow(9, 4, "sedan", 100.0, 12.0, true))

	travel, _ := utils.ParseDate("2026-05-01")
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs(sqlmock.AnyArg(), int64(1), "cab", int64(9), travel, nil, sqlmock.AnyArg(), "pending", "pending").
		WillReturnResult(sqlmock.NewResult(44, 1))

	booking, err := svc.Create(user, BookingRequest{
		Type:       "cab",
		ServiceID:  9,
		TravelDate: "2026-05-01",
		Pickup:     "Airport",
		Dropoff:    "City Center",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// The fallback stub draws a distance in [5,50] km, so the fare must
	// land in [100+12*5, 100+12*50].
	if booking.TotalAmount < 160.0 || booking.TotalAmount > 700.0 {
		t.Errorf("total = %v, want within [160, 700]", booking.TotalAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateBookingUnknownService(t *testing.T) {
	svc, mock, cleanup := newBookingService(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, provider_id, name, location, description, price_per_night, amenities, images, rating, rating_count FROM hotels WHERE id=?`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Create(user, BookingRequest{
		Type:      "hotel",
		ServiceID: 99,
		CheckIn:   "2026-03-10",
		CheckOut:  "2026-03-12",
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, cleanup := newBookingService(t)
	defer cleanup()

	cases := []struct {
		name string
		req  BookingRequest
	}{
		{"bad type", BookingRequest{Type: "flight", ServiceID: 1}},
		{"bad id", BookingRequest{Type: "hotel", ServiceID: 0}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(user, tc.req); !domain.IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	if _, err := svc.Create(domain.RequestContext{}, BookingRequest{Type: "hotel", ServiceID: 1}); !domain.IsUnauthorized(err) {
		t.Errorf("anonymous: expected unauthorized, got %v", err)
	}
}
